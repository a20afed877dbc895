package taxonomy

import "strconv"

// Language is a canonical programming language identifier. The numeric
// values are the ones taxonomy files use in their "languages" table.
type Language int

// Known languages. LanguageUnknown is the sentinel for unrecognized tokens.
const (
	LanguageUnknown Language = iota
	LanguageJava
	LanguageJavaScript
	LanguagePython
	LanguageRuby
	LanguageCCPlusPlus
	LanguageLisp
	LanguageKotlin
	LanguageASPNet
	LanguageCSharp
	LanguageHaskell
	LanguageGo
	LanguagePHP
	LanguageRust
	LanguageMatlabR
	LanguageSwift
	LanguageTypeScript
	LanguageDart
	LanguageABAP
	LanguageActionScript
	LanguageAda
	LanguageAlgol
	LanguageAlice
	LanguageAPL
	LanguageAssembly
	LanguageAwk
	LanguageBBCBasic
	LanguageCOBOL
	LanguageCSS
	LanguageD
	LanguageDelphi
	LanguageErlang
	LanguageFSharp
	LanguageForth
	LanguageFortran
	LanguageHTML
	LanguageIDL
	LanguageIntercal
	LanguageLabVIEW
	LanguageLogo
	LanguageML
	LanguageModula3
	LanguageNXTG
	LanguageObjectiveC
	LanguageOCaml
	LanguagePascal
	LanguagePerl
	LanguagePostScript
	LanguageProlog
	LanguageSPlus
	LanguageScala
	LanguageSGML
	LanguageSimula
	LanguageSmalltalk
	LanguageSMIL
	LanguageSNOBOL
	LanguageSQL
	LanguageSSI
	LanguageStata
	LanguageTclTk
	LanguageTeX
	LanguageVerilog
	LanguageVHDL
	LanguageVB
	LanguageVRML
	LanguageWAPWML
	LanguageXML
	LanguageXSL

	languageCount
)

var languageLabels = [languageCount]string{
	"UNKNOWN", "JAVA", "JAVASCRIPT", "PYTHON", "RUBY", "C_C_PLUSPLUS", "LISP",
	"KOTLIN", "ASP_NET", "C_SHARP", "HASKELL", "GO", "PHP", "RUST", "MATLAB_R",
	"SWIFT", "TYPESCRIPT", "DART", "ABAP", "ACTIONSCRIPT", "ADA", "ALGOL",
	"ALICE", "APL", "ASSEMBLY", "AWK", "BBC_BASIC", "COBOL", "CSS", "D",
	"DELPHI", "ERLANG", "F_SHARP", "FORTH", "FORTRAN", "HTML", "IDL",
	"INTERCAL", "LABVIEW", "LOGO", "ML", "MODULA_3", "NXT_G", "OBJECTIVE_C",
	"OCAML", "PASCAL", "PERL", "POSTSCRIPT", "PROLOG", "S_PLUS", "SCALA",
	"SGML", "SIMULA", "SMALLTALK", "SMIL", "SNOBOL", "SQL", "SSI", "STATA",
	"TCL_TK", "TEX", "VERILOG", "VHDL", "VB", "VRML", "WAP_WML", "XML", "XSL",
}

// Valid reports whether l is a known identifier, including LanguageUnknown.
func (l Language) Valid() bool { return l >= LanguageUnknown && l < languageCount }

// String returns the expertise label for l, e.g. "JAVASCRIPT".
func (l Language) String() string {
	if !l.Valid() {
		return "Language(" + strconv.Itoa(int(l)) + ")"
	}
	return languageLabels[l]
}
