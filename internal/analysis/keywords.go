package analysis

// Expected vocabulary per detected topic. The analyzer matches
// transcript tokens against the set for the question's topic.
var topicKeywords = map[string][]string{
	"excel": {
		"pivot table", "vlookup", "hlookup", "index", "match", "formula",
		"conditional formatting", "macro", "chart", "filter", "spreadsheet",
	},
	"sql": {
		"select", "join", "group by", "where", "index", "aggregate",
		"subquery", "primary key", "foreign key", "normalization", "query",
	},
	"python": {
		"pandas", "dataframe", "numpy", "function", "loop", "list",
		"dictionary", "library", "script", "matplotlib", "variable",
	},
	"statistics": {
		"mean", "median", "mode", "standard deviation", "variance",
		"correlation", "regression", "hypothesis", "p-value", "distribution",
	},
	"ml": {
		"machine learning", "model", "training", "feature", "classification",
		"regression", "overfitting", "accuracy", "neural network", "dataset",
	},
	"communication": {
		"stakeholder", "presentation", "visualization", "insight", "report",
		"dashboard", "audience", "summary", "collaborate", "explain",
	},
	"data-analysis": {
		"data", "analysis", "clean", "trend", "insight", "metric",
		"visualization", "dataset", "outlier", "report",
	},
}

// topicSignals is evaluated in order; the first topic whose signal
// appears in the question text wins, defaulting to data-analysis.
var topicSignals = []struct {
	topic   string
	signals []string
}{
	{"excel", []string{"excel", "spreadsheet", "vlookup", "pivot"}},
	{"python", []string{"python", "pandas", "numpy", "script"}},
	{"sql", []string{"sql", "query", "database", "table join"}},
	{"ml", []string{"machine learning", "model", "predict"}},
	{"statistics", []string{"statistic", "regression", "hypothesis", "correlation"}},
	{"communication", []string{"communicate", "stakeholder", "present", "explain"}},
}

// Known synonyms and abbreviations, applied in both directions during
// keyword matching.
var synonyms = map[string][]string{
	"machine learning":   {"ml"},
	"pivot table":        {"pivot", "pivot tables"},
	"vlookup":            {"v-lookup", "lookup"},
	"standard deviation": {"stdev", "std dev"},
	"visualization":      {"visualisation", "viz", "chart", "graph"},
	"dataframe":          {"data frame"},
	"aggregate":          {"aggregation", "aggregating"},
	"normalization":      {"normalisation", "normalized", "normalised"},
	"subquery":           {"sub-query", "nested query"},
	"dictionary":         {"dict"},
}

var positiveWords = []string{
	"good", "great", "excellent", "confident", "effective", "efficient",
	"improve", "success", "successful", "strong", "clear", "helpful",
	"useful", "accurate", "reliable", "enjoy", "best", "well",
}

var negativeWords = []string{
	"bad", "poor", "difficult", "hard", "problem", "issue", "wrong",
	"fail", "failure", "confused", "unsure", "never", "weak", "worst",
	"struggle", "error", "mistake",
}

var fillerWords = []string{
	"um", "uh", "er", "ah", "like", "basically", "actually", "literally",
}
