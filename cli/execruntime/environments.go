// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package execruntime

import "strings"

var environmentProvider envProvider = &osEnvProvider{}

// Variable describes one environment variable an execution runtime
// exposes.
type Variable struct {
	Name string
	Desc string
}

// RuntimeEnv describes the environment a run executes in, e.g. a CI
// system or an interactive client.
type RuntimeEnv struct {
	Id        string
	Name      string
	Namespace string
	Prefix    string
	// Identify lists the variables that have to be present for this
	// runtime to be detected.
	Identify []Variable
	// Variables are collected as labels when set.
	Variables []Variable
}

var environmentDef = map[string]*RuntimeEnv{
	AWS_CODEBUILD: awscodebuildEnv,
	AZUREPIPELINE: azurePipelineEnv,
	CIRCLE:        circleEnv,
	GITHUB:        githubEnv,
	JENKINS:       jenkinsEnv,
	K8S_OPERATOR:  kubernetesEnv,
	MONDOO_CI:     mondooCIEnv,
	TERRAFORM:     terraformEnv,
	TRAVIS:        travisEnv,
}

// Detect returns true when every identify variable is present.
func (e *RuntimeEnv) Detect() bool {
	if len(e.Identify) == 0 {
		return false
	}
	for i := range e.Identify {
		if environmentProvider.Getenv(e.Identify[i].Name) == "" {
			return false
		}
	}
	return true
}

// IsAutomatedEnv is true for every runtime that is not an interactive
// client.
func (e *RuntimeEnv) IsAutomatedEnv() bool {
	return e.Id != CLIENT_ENV
}

// Labels returns the runtime's set variables, keyed by namespace for
// machine consumption.
func (e *RuntimeEnv) Labels() map[string]string {
	labels := map[string]string{
		"mondoo.com/exec-environment": e.Namespace,
	}
	for i := range e.Variables {
		v := e.Variables[i]
		value := environmentProvider.Getenv(v.Name)
		if value == "" {
			continue
		}
		labels[e.Namespace+"/"+labelName(v.Name, e.Prefix)] = value
	}
	return labels
}

// labelName derives the label segment for a variable. Variables under the
// runtime's own prefix keep their word breaks as hyphens; foreign
// variables collapse to a single word.
func labelName(name, prefix string) string {
	if prefix != "" && strings.HasPrefix(name, prefix+"_") {
		rest := strings.TrimPrefix(name, prefix+"_")
		return strings.ToLower(strings.ReplaceAll(rest, "_", "-"))
	}
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}
