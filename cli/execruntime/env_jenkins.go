// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package execruntime

const JENKINS = "jenkins"

var jenkinsEnv = &RuntimeEnv{
	Id:        JENKINS,
	Name:      "Jenkins CI",
	Namespace: "jenkins.io",
	Prefix:    "JENKINS",
	Identify: []Variable{
		{
			Name: "JENKINS_URL",
			Desc: "Full URL of Jenkins, like https://example.com:port/jenkins/",
		},
	},
	Variables: []Variable{
		{
			Name: "JENKINS_URL",
			Desc: "Full URL of Jenkins, like https://example.com:port/jenkins/",
		},
		{
			Name: "GIT_URL",
			Desc: "The URL of the remote repository.",
		},
		{
			Name: "GIT_COMMIT",
			Desc: "The commit hash being checked out.",
		},
		{
			Name: "GIT_BRANCH",
			Desc: "The remote branch name, if any.",
		},
		{
			Name: "JOB_NAME",
			Desc: "Name of the project of this build.",
		},
		{
			Name: "BUILD_ID",
			Desc: "The current build ID.",
		},
		{
			Name: "BUILD_NUMBER",
			Desc: "The current build number.",
		},
		{
			Name: "BUILD_URL",
			Desc: "Full URL of this build.",
		},
	},
}
