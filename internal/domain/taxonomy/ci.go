package taxonomy

import "strconv"

// CI is a canonical continuous integration platform identifier.
type CI int

// Known platforms. Zero is not a platform.
const (
	CIGitLab CI = iota + 1
	CIJarvis
	CIHeroku
	CINetlify
	CIGitHub
	CICodePipeline
	CITeamCity
	CICircleCI
	CIJenkins
	CIAzure
	CIBamboo
	CIBitbucket

	ciEnd
)

var ciLabels = [...]string{
	CIGitLab:       "GITLAB",
	CIJarvis:       "JARVIS",
	CIHeroku:       "HEROKU",
	CINetlify:      "NETLIFY",
	CIGitHub:       "GITHUB",
	CICodePipeline: "CODE_PIPELINE",
	CITeamCity:     "TEAMCITY",
	CICircleCI:     "CIRCLE_CI",
	CIJenkins:      "JENKINS",
	CIAzure:        "AZURE",
	CIBamboo:       "BAMBOO",
	CIBitbucket:    "BITBUCKET",
}

// Valid reports whether c is a known platform.
func (c CI) Valid() bool { return c >= CIGitLab && c < ciEnd }

func (c CI) String() string {
	if !c.Valid() {
		return "CI(" + strconv.Itoa(int(c)) + ")"
	}
	return ciLabels[c]
}
