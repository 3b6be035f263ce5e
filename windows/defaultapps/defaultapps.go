// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package defaultapps moves Windows default file-type associations in and
// out of the DISM associations XML format.
package defaultapps

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// ExportCmd returns the dism.exe invocation that writes the current
// default app associations to an XML file.
func ExportCmd(file string) string {
	return fmt.Sprintf("dism.exe /Online /Export-DefaultAppAssociations:\"%s\"", file)
}

// ImportCmd returns the dism.exe invocation that applies default app
// associations from an XML file.
func ImportCmd(file string) string {
	return fmt.Sprintf("dism.exe /Online /Import-DefaultAppAssociations:\"%s\"", file)
}

// Association maps one file extension or protocol to an application.
type Association struct {
	Identifier      string `xml:"Identifier,attr"`
	ProgID          string `xml:"ProgId,attr"`
	ApplicationName string `xml:"ApplicationName,attr"`
}

type associationsDoc struct {
	XMLName      xml.Name      `xml:"DefaultAssociations"`
	Associations []Association `xml:"Association"`
}

// ParseAssociations parses a DISM default app associations XML document.
func ParseAssociations(r io.Reader) ([]Association, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc associationsDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "could not parse default app associations")
	}
	return doc.Associations, nil
}
