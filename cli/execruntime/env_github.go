// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package execruntime

const GITHUB = "github"

var githubEnv = &RuntimeEnv{
	Id:        GITHUB,
	Name:      "GitHub Actions",
	Namespace: "actions.github.com",
	Prefix:    "GITHUB",
	Identify: []Variable{
		{
			Name: "GITHUB_ACTION",
		},
	},
	Variables: []Variable{
		{
			Name: "GITHUB_ACTION",
			Desc: "The name of the action currently running.",
		},
		{
			Name: "GITHUB_WORKFLOW",
			Desc: "The name of the workflow.",
		},
		{
			Name: "GITHUB_RUN_ID",
			Desc: "A unique number for each workflow run within a repository.",
		},
		{
			Name: "GITHUB_RUN_NUMBER",
			Desc: "A unique number for each run of a particular workflow in a repository.",
		},
		{
			Name: "GITHUB_SHA",
			Desc: "The commit SHA that triggered the workflow.",
		},
		{
			Name: "GITHUB_REF",
			Desc: "The branch or tag ref that triggered the workflow.",
		},
		{
			Name: "GITHUB_ACTOR",
			Desc: "The name of the person or app that initiated the workflow.",
		},
		{
			Name: "GITHUB_REPOSITORY",
			Desc: "The owner and repository name, for example octocat/Hello-World.",
		},
		{
			Name: "GITHUB_EVENT_NAME",
			Desc: "The name of the webhook event that triggered the workflow.",
		},
	},
}
