// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package execruntime

const CIRCLE = "circleci"

var circleEnv = &RuntimeEnv{
	Id:        CIRCLE,
	Name:      "CircleCI",
	Namespace: "circleci.com",
	Prefix:    "CIRCLE",
	Identify: []Variable{
		{
			Name: "CIRCLECI",
			Desc: "Represents whether the current environment is a CircleCI environment.",
		},
	},
	Variables: []Variable{
		{
			Name: "CIRCLE_REPOSITORY_URL",
			Desc: "The URL of your GitHub or Bitbucket repository.",
		},
		{
			Name: "CIRCLE_PROJECT_REPONAME",
			Desc: "The name of the repository of the current project.",
		},
		{
			Name: "CIRCLE_BUILD_NUM",
			Desc: "The number of the CircleCI build.",
		},
		{
			Name: "CIRCLE_BUILD_URL",
			Desc: "The URL for the current build.",
		},
		{
			Name: "CIRCLE_USERNAME",
			Desc: "The GitHub or Bitbucket username of the user who triggered the build.",
		},
		{
			Name: "CIRCLE_BRANCH",
			Desc: "The name of the Git branch currently being built.",
		},
		{
			Name: "CIRCLE_JOB",
			Desc: "The name of the current job.",
		},
		{
			Name: "CIRCLE_SHA1",
			Desc: "The SHA1 hash of the last commit of the current build.",
		},
		{
			Name: "CIRCLE_PR_NUMBER",
			Desc: "The number of the associated GitHub or Bitbucket pull request.",
		},
	},
}
