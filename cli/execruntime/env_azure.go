// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package execruntime

const AZUREPIPELINE = "azure-pipelines"

var azurePipelineEnv = &RuntimeEnv{
	Id:        AZUREPIPELINE,
	Name:      "Azure Pipelines",
	Namespace: "devops.azure.com",
	Prefix:    "BUILD",
	Identify: []Variable{
		{
			Name: "TF_BUILD",
			Desc: "Set to True when the script is being run by a build task.",
		},
	},
	Variables: []Variable{
		{
			Name: "BUILD_REPOSITORY_NAME",
			Desc: "The name of the triggering repository.",
		},
		{
			Name: "BUILD_BUILDID",
			Desc: "The ID of the record for the completed build.",
		},
		{
			Name: "BUILD_BUILDNUMBER",
			Desc: "The name of the completed build.",
		},
		{
			Name: "BUILD_SOURCEVERSION",
			Desc: "The latest version control change of the triggering repo that is included in this build.",
		},
		{
			Name: "BUILD_SOURCEVERSIONAUTHOR",
			Desc: "The author of the changeset or commit.",
		},
		{
			Name: "BUILD_SOURCEBRANCHNAME",
			Desc: "The name of the branch in the triggering repo the build was queued for.",
		},
		{
			Name: "BUILD_DEFINITIONNAME",
			Desc: "The name of the build pipeline.",
		},
	},
}
