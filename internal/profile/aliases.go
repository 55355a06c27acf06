// Package profile normalizes extracted candidate facts and derives the
// relevant-experience map used by the relevant_experience scorer.
package profile

// aliasMap maps lowercase alias substrings found in role/description text to
// canonical skill tokens. Duration attribution credits the canonical token.
var aliasMap = map[string]string{
	"golang":           "go",
	" go ":             "go",
	"python":           "python",
	"java ":            "java",
	"javascript":       "javascript",
	"js ":              "javascript",
	"typescript":       "typescript",
	"react":            "react",
	"angular":          "angular",
	"vue":              "vue",
	"node":             "node.js",
	"django":           "django",
	"flask":            "flask",
	"spring":           "spring",
	"dotnet":           ".net",
	".net":             ".net",
	"c++":              "c++",
	"c#":               "c#",
	"sql":              "sql",
	"mysql":            "mysql",
	"postgres":         "postgresql",
	"mongodb":          "mongodb",
	"redis":            "redis",
	"kafka":            "kafka",
	"rabbitmq":         "rabbitmq",
	"elasticsearch":    "elasticsearch",
	"docker":           "docker",
	"kubernetes":       "kubernetes",
	"k8s":              "kubernetes",
	"terraform":        "terraform",
	"ansible":          "ansible",
	"jenkins":          "jenkins",
	"aws":              "aws",
	"azure":            "azure",
	"gcp":              "gcp",
	"linux":            "linux",
	"git":              "git",
	"rest":             "rest",
	"graphql":          "graphql",
	"grpc":             "grpc",
	"microservice":     "microservices",
	"machine learning": "machine learning",
	"deep learning":    "deep learning",
	"data science":     "data science",
	"nlp":              "nlp",
	"pandas":           "pandas",
	"numpy":            "numpy",
	"tensorflow":       "tensorflow",
	"pytorch":          "pytorch",
	"tableau":          "tableau",
	"power bi":         "power bi",
	"excel":            "excel",
	"selenium":         "selenium",
	"jira":             "jira",
}
