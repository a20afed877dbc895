package volunteer

// Survey column headers, verbatim from the volunteer sign-up form.
const (
	ColUsername = "Username"

	ColDesignerCapable   = "In general, I would consider myself capable of being a designer volunteer"
	ColPortfolioURL      = "My portfolio's URL is"
	ColDesignConfidence  = "I would rate my design skills as"
	ColDesignSkills      = "My top 3 design skills are"
	ColJSProficiency     = "I am proficient with at least one JS Framework"
	ColJSFramework       = "The framework I would say I'm most confident in is"
	ColDesignerFor       = "I've been a designer for"
	ColDeveloperCapable  = "In general, I would consider myself capable of being a volunteer developer"
	ColGithubURL         = "Github URL"
	ColBackendConfident  = "I am confident in my backend skills"
	ColFrontendConfident = "I am confident in my front end skills"
	ColOSS               = "I have experience contributing to open source (OSS) projects"
	ColLinter            = "I know what a Linter is and what purpose it serves"
	ColCI                = "I use Continuous Integration (CI) for my projects"
	ColCIPlatforms       = "If yes, which CI platform(s)"
	ColTDD               = "I know Test-Driven Development (TDD)"
	ColCodeReview        = "Code I wrote has been subject to code reviews"
	ColLanguages         = "My top 3 programming languages are"
	ColFrameworks        = "My top 3 frameworks are"
	ColProgrammerFor     = "I've been a programming for"
	ColDBMS              = "I have experience with Database Management Systems (DBMS)"
	ColDataAnalytics     = "I have experience in data analytics"
	ColLeadCapable       = "I would like to be considered for a team lead role"
	ColManagingFor       = "How long have you been managing people/product(s)"
)

// Columns lists every header the classifier reads. A survey missing any of
// them is rejected before the first response is parsed.
var Columns = []string{
	ColUsername,
	ColDesignerCapable,
	ColPortfolioURL,
	ColDesignConfidence,
	ColDesignSkills,
	ColJSProficiency,
	ColJSFramework,
	ColDesignerFor,
	ColDeveloperCapable,
	ColGithubURL,
	ColBackendConfident,
	ColFrontendConfident,
	ColOSS,
	ColLinter,
	ColCI,
	ColCIPlatforms,
	ColTDD,
	ColCodeReview,
	ColLanguages,
	ColFrameworks,
	ColProgrammerFor,
	ColDBMS,
	ColDataAnalytics,
	ColLeadCapable,
	ColManagingFor,
}
