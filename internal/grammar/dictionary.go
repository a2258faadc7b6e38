package grammar

import "regexp"

// misspellings maps common résumé misspellings (lower-case) to their correction.
var misspellings = map[string]string{
	"accomodate":     "accommodate",
	"acheive":        "achieve",
	"acheived":       "achieved",
	"acheivement":    "achievement",
	"adress":         "address",
	"advertisment":   "advertisement",
	"begining":       "beginning",
	"beleive":        "believe",
	"buisness":       "business",
	"calender":       "calendar",
	"carrer":         "career",
	"comming":        "coming",
	"compleate":      "complete",
	"conect":         "connect",
	"definately":     "definitely",
	"dependance":     "dependence",
	"developement":   "development",
	"differance":     "difference",
	"differnt":       "different",
	"dificult":       "difficult",
	"disapear":       "disappear",
	"embarass":       "embarrass",
	"enviroment":     "environment",
	"excellant":      "excellent",
	"existance":      "existence",
	"experiance":     "experience",
	"familar":        "familiar",
	"favourate":      "favorite",
	"foward":         "forward",
	"freind":         "friend",
	"funtional":      "functional",
	"futher":         "further",
	"garentee":       "guarantee",
	"goverment":      "government",
	"happend":        "happened",
	"harrassment":    "harassment",
	"immediatly":     "immediately",
	"improvment":     "improvement",
	"independant":    "independent",
	"inital":         "initial",
	"intrested":      "interested",
	"intresting":     "interesting",
	"judgement":      "judgment",
	"knowlege":       "knowledge",
	"lenght":         "length",
	"librery":        "library",
	"lisence":        "license",
	"maintainance":   "maintenance",
	"maintanance":    "maintenance",
	"managment":      "management",
	"neccessary":     "necessary",
	"occassion":      "occasion",
	"occured":        "occurred",
	"oppurtunity":    "opportunity",
	"performence":    "performance",
	"persistant":     "persistent",
	"prefered":       "preferred",
	"priviledge":     "privilege",
	"proffesional":   "professional",
	"publically":     "publicly",
	"recieve":        "receive",
	"recomend":       "recommend",
	"relevent":       "relevant",
	"requirment":     "requirement",
	"resposibility":  "responsibility",
	"resposible":     "responsible",
	"responsability": "responsibility",
	"seperate":       "separate",
	"succesful":      "successful",
	"succesfully":    "successfully",
	"techincal":      "technical",
	"teh":            "the",
	"temperture":     "temperature",
	"thier":          "their",
	"togather":       "together",
	"tommorow":       "tomorrow",
	"truely":         "truly",
	"univeristy":     "university",
	"untill":         "until",
	"usefull":        "useful",
	"writen":         "written",
	"writting":       "writing",
}

// professionalTerm is an informal or misspelled term with its preferred form.
// Terms whose correction differs only in case (phd, mba) are valid shorthand
// and are not listed.
type professionalTerm struct {
	term       string
	correction string
	pattern    *regexp.Regexp
}

func newProfessionalTerm(term, correction string) professionalTerm {
	return professionalTerm{
		term:       term,
		correction: correction,
		pattern:    wordPattern(term),
	}
}

var professionalTerms = []professionalTerm{
	newProfessionalTerm("resumee", "résumé"),
	newProfessionalTerm("btech", "B.Tech"),
	newProfessionalTerm("mtech", "M.Tech"),
}

// technicalExclusions are abbreviations and short technical terms that must
// never be reported as misspellings or grammar errors.
var technicalExclusions = map[string]bool{
	// single letters
	"a": true, "b": true, "c": true, "d": true, "e": true, "f": true, "g": true,
	"h": true, "i": true, "j": true, "k": true, "l": true, "m": true, "n": true,
	"o": true, "p": true, "q": true, "r": true, "s": true, "t": true, "u": true,
	"v": true, "w": true, "x": true, "y": true, "z": true,

	// short language names
	"c++": true, "c#": true, "go": true, "f#": true, "js": true, "ts": true,
	"py": true, "rb": true, "pl": true, "sh": true,

	// degrees
	"btech": true, "b.tech": true, "mtech": true, "m.tech": true, "bsc": true,
	"b.sc": true, "msc": true, "m.sc": true, "bca": true, "mca": true, "ba": true,
	"ma": true, "be": true, "me": true, "bba": true, "mba": true, "phd": true,
	"ph.d": true, "bcom": true, "b.com": true, "mcom": true, "m.com": true,
	"llb": true, "llm": true, "md": true, "mbbs": true, "barch": true,
	"b.arch": true, "bdes": true, "mdes": true, "bfa": true, "mfa": true,

	// cloud and devops
	"aws": true, "gcp": true, "azure": true, "ec2": true, "s3": true, "ecs": true,
	"eks": true, "rds": true, "vpc": true, "iam": true, "ci": true, "cd": true,
	"ci/cd": true, "devops": true, "sre": true, "k8s": true, "docker": true,
	"helm": true,

	// web
	"api": true, "apis": true, "rest": true, "restful": true, "graphql": true,
	"grpc": true, "soap": true, "jwt": true, "oauth": true, "http": true,
	"https": true, "html": true, "css": true, "scss": true, "sass": true,
	"less": true, "xml": true, "json": true, "yaml": true, "dom": true,
	"ajax": true, "spa": true, "pwa": true, "ssr": true, "ssg": true, "cdn": true,
	"dns": true, "ssl": true, "tls": true,

	// databases
	"sql": true, "nosql": true, "mysql": true, "postgresql": true, "mongodb": true,
	"redis": true, "sqlite": true, "dynamodb": true, "cassandra": true,
	"neo4j": true, "elasticsearch": true, "kafka": true,

	// ai/ml
	"ai": true, "ml": true, "dl": true, "nlp": true, "cv": true, "cnn": true,
	"rnn": true, "lstm": true, "gan": true, "bert": true, "gpt": true,
	"llms": true, "rag": true, "mlops": true, "aiops": true,

	// tools
	"git": true, "svn": true, "npm": true, "yarn": true, "pip": true, "maven": true,
	"gradle": true, "cmake": true, "cli": true, "sdk": true, "ide": true,
	"vscode": true, "vim": true, "emacs": true, "ui": true, "ux": true,
	"ui/ux": true, "cms": true, "crm": true, "erp": true, "sap": true,

	// networking
	"tcp": true, "udp": true, "ip": true, "ftp": true, "sftp": true, "ssh": true,
	"vpn": true, "lan": true, "wan": true, "wifi": true, "dhcp": true, "nat": true,

	// hardware
	"os": true, "pc": true, "cpu": true, "gpu": true, "tpu": true, "ram": true,
	"rom": true, "ssd": true, "hdd": true, "nvme": true, "usb": true, "io": true,
	"iot": true, "ar": true, "vr": true, "xr": true, "hpc": true,

	// business
	"hr": true, "it": true, "qa": true, "qc": true, "pm": true, "cto": true,
	"ceo": true, "cfo": true, "coo": true, "b2b": true, "b2c": true, "saas": true,
	"paas": true, "iaas": true, "roi": true, "kpi": true, "okr": true,

	// misc
	"agile": true, "scrum": true, "kanban": true, "jira": true, "asana": true,
	"figma": true, "xd": true, "regex": true, "xpath": true, "linq": true,
	"orm": true, "mvc": true, "mvvm": true, "mvp": true, "poc": true, "eta": true,
	"eod": true, "wip": true, "pr": true, "mr": true, "cr": true,
}

// Grammar issue labels.
const (
	issueLowercaseI    = `Capitalize "i" when referring to yourself`
	issueDayName       = "Capitalize day names"
	issueMonthName     = "Capitalize month names"
	issueArticleRepeat = "Remove duplicate articles"
	issueVerbRepeat    = "Remove duplicate verbs"
	issueConjRepeat    = "Remove duplicate conjunctions"
	issueContraction   = "Add missing apostrophe in contraction"
)

var repeatGroups = []struct {
	words map[string]bool
	issue string
}{
	{map[string]bool{"a": true, "an": true, "the": true}, issueArticleRepeat},
	{map[string]bool{"is": true, "are": true, "was": true, "were": true, "be": true, "been": true}, issueVerbRepeat},
	{map[string]bool{"and": true, "or": true, "but": true}, issueConjRepeat},
}
