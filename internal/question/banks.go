package question

import "prepwise-backend/internal/model"

// Static fallback banks. These are the guarantee that a session always
// has a next question even when every external service is down.

var theoryBank = map[model.Difficulty][]model.TheoryQuestion{
	model.DifficultyEasy: {
		{Question: "What is the difference between a VLOOKUP and an INDEX-MATCH in Excel, and when would you prefer one over the other?", Difficulty: "easy", Category: "excel"},
		{Question: "Explain what a SQL JOIN does and describe the difference between an INNER JOIN and a LEFT JOIN.", Difficulty: "easy", Category: "sql"},
		{Question: "How would you clean a dataset that contains missing values before analysis?", Difficulty: "easy", Category: "data-analysis"},
		{Question: "What is a pivot table and what kinds of questions does it help answer?", Difficulty: "easy", Category: "excel"},
	},
	model.DifficultyMedium: {
		{Question: "Describe how you would use GROUP BY with aggregate functions in SQL to summarize sales by region.", Difficulty: "medium", Category: "sql"},
		{Question: "How do pandas DataFrames differ from plain Python lists and dictionaries for data analysis work?", Difficulty: "medium", Category: "python"},
		{Question: "Walk through how you would detect and handle outliers in a numeric dataset.", Difficulty: "medium", Category: "statistics"},
		{Question: "Explain how conditional formatting and filters in Excel can speed up exploratory analysis.", Difficulty: "medium", Category: "excel"},
	},
	model.DifficultyHard: {
		{Question: "Explain query normalization and when you would deliberately denormalize a schema for analytical workloads.", Difficulty: "hard", Category: "sql"},
		{Question: "How would you explain the risk of overfitting in a machine learning model to a non-technical stakeholder?", Difficulty: "hard", Category: "ml"},
		{Question: "Describe a robust approach to hypothesis testing when comparing conversion rates between two user groups.", Difficulty: "hard", Category: "statistics"},
		{Question: "How would you design a reporting pipeline that combines SQL extraction, Python transformation, and an Excel deliverable?", Difficulty: "hard", Category: "data-analysis"},
	},
}

type bankKey struct {
	module     model.Module
	difficulty model.Difficulty
}

var practicalBank = map[bankKey][]model.PracticalQuestion{
	{model.ModuleSQL, model.DifficultyEasy}: {
		{
			Question:     "Write a SQL query that returns all customers from the 'customers' table who signed up in 2024.",
			Scenario:     "The customers table has columns id, name, email and signup_date.",
			Requirements: []string{"Use a WHERE clause on signup_date", "Return all columns"},
			Difficulty:   "easy",
			TestCases: []model.TestCase{
				{Description: "Returns only rows with signup_date in 2024", ExpectedOutput: "Rows filtered to 2024"},
				{Description: "Includes all customer columns", ExpectedOutput: "id, name, email, signup_date"},
			},
			Module: model.ModuleSQL,
		},
	},
	{model.ModuleSQL, model.DifficultyMedium}: {
		{
			Question:     "Write a SQL query that returns total revenue per region, highest first.",
			Scenario:     "An 'orders' table has columns region, amount and order_date.",
			Requirements: []string{"Use GROUP BY region", "Use SUM(amount)", "Order by total descending"},
			Difficulty:   "medium",
			TestCases: []model.TestCase{
				{Description: "Aggregates amounts per region", ExpectedOutput: "One row per region"},
				{Description: "Sorted by total revenue descending", ExpectedOutput: "Highest revenue first"},
			},
			Module: model.ModuleSQL,
		},
	},
	{model.ModuleSQL, model.DifficultyHard}: {
		{
			Question:     "Write a SQL query that finds the top three products by revenue within each category.",
			Scenario:     "A 'sales' table has columns product, category and revenue.",
			Requirements: []string{"Use a window function or correlated subquery", "Limit to three per category"},
			Difficulty:   "hard",
			TestCases: []model.TestCase{
				{Description: "At most three rows per category", ExpectedOutput: "Top 3 per category"},
				{Description: "Ranked by revenue within the category", ExpectedOutput: "Descending revenue order"},
			},
			Module: model.ModuleSQL,
		},
	},
	{model.ModulePython, model.DifficultyEasy}: {
		{
			Question:     "Write a Python function that returns the average of a list of numbers, ignoring None values.",
			Requirements: []string{"Handle an empty list without raising", "Skip None entries"},
			Difficulty:   "easy",
			TestCases: []model.TestCase{
				{Description: "average([1, 2, 3]) returns 2.0", ExpectedOutput: "2.0"},
				{Description: "average([]) returns 0", ExpectedOutput: "0"},
			},
			Module: model.ModulePython,
		},
	},
	{model.ModulePython, model.DifficultyMedium}: {
		{
			Question:     "Using pandas, load a CSV of sales data and produce the total sales per month.",
			Scenario:     "Columns: date (YYYY-MM-DD), amount.",
			Requirements: []string{"Parse dates", "Group by month", "Sum amounts"},
			Difficulty:   "medium",
			TestCases: []model.TestCase{
				{Description: "Groups rows by calendar month", ExpectedOutput: "One row per month"},
				{Description: "Sums the amount column", ExpectedOutput: "Monthly totals"},
			},
			Module: model.ModulePython,
		},
	},
	{model.ModulePython, model.DifficultyHard}: {
		{
			Question:     "Write a Python function that detects outliers in a numeric series using the IQR method.",
			Requirements: []string{"Compute Q1/Q3 and IQR", "Return indices of outliers", "Handle series shorter than four elements"},
			Difficulty:   "hard",
			TestCases: []model.TestCase{
				{Description: "Flags values beyond 1.5*IQR", ExpectedOutput: "Outlier indices"},
				{Description: "Short series returns no outliers", ExpectedOutput: "[]"},
			},
			Module: model.ModulePython,
		},
	},
	{model.ModuleExcel, model.DifficultyEasy}: {
		{
			Question:     "Write an Excel formula that looks up an employee's department from a table in columns B:C using the ID in A2.",
			Requirements: []string{"Use VLOOKUP or INDEX-MATCH", "Use an exact match"},
			Difficulty:   "easy",
			TestCases: []model.TestCase{
				{Description: "Returns the department for an existing ID", ExpectedOutput: "Matching department"},
				{Description: "Uses exact-match lookup", ExpectedOutput: "FALSE / 0 match type"},
			},
			Module: model.ModuleExcel,
		},
	},
	{model.ModuleExcel, model.DifficultyMedium}: {
		{
			Question:     "Describe or write the formulas for a summary sheet that shows total and average sales per region from a raw data tab.",
			Requirements: []string{"Use SUMIF/AVERAGEIF or a pivot table", "Reference the raw data tab"},
			Difficulty:   "medium",
			TestCases: []model.TestCase{
				{Description: "Totals computed per region", ExpectedOutput: "SUMIF per region"},
				{Description: "Averages computed per region", ExpectedOutput: "AVERAGEIF per region"},
			},
			Module: model.ModuleExcel,
		},
	},
	{model.ModuleExcel, model.DifficultyHard}: {
		{
			Question:     "Explain how you would build a dynamic dashboard in Excel that updates when new monthly data is appended.",
			Requirements: []string{"Use structured tables or dynamic ranges", "Include at least one chart", "Describe refresh behavior"},
			Difficulty:   "hard",
			TestCases: []model.TestCase{
				{Description: "New rows are picked up without editing formulas", ExpectedOutput: "Dynamic ranges/tables"},
				{Description: "Chart reflects appended data", ExpectedOutput: "Auto-updating chart"},
			},
			Module: model.ModuleExcel,
		},
	},
}

// FallbackTheoryQuestion draws from the static bank, excluding question
// texts already used this session. When the bank is exhausted a repeat
// is allowed rather than failing.
func FallbackTheoryQuestion(difficulty model.Difficulty, previousQuestions []string) model.TheoryQuestion {
	bank := theoryBank[difficulty]
	if len(bank) == 0 {
		bank = theoryBank[model.DifficultyEasy]
	}

	used := make(map[string]bool, len(previousQuestions))
	for _, q := range previousQuestions {
		used[q] = true
	}

	for _, candidate := range bank {
		if !used[candidate.Question] {
			return candidate
		}
	}
	return bank[0]
}

// FallbackPracticalQuestion draws from the per-module bank, falling
// back to a generic templated question when no module-specific entry
// exists.
func FallbackPracticalQuestion(module model.Module, difficulty model.Difficulty, theoryQuestion string) model.PracticalQuestion {
	if bank := practicalBank[bankKey{module, difficulty}]; len(bank) > 0 {
		return bank[0]
	}
	return genericPracticalQuestion(module, difficulty, theoryQuestion)
}

func genericPracticalQuestion(module model.Module, difficulty model.Difficulty, theoryQuestion string) model.PracticalQuestion {
	return model.PracticalQuestion{
		Question:     "Write a " + string(module) + " solution for a practical task related to the topic you just discussed.",
		Scenario:     "Follow-up to: " + theoryQuestion,
		Requirements: []string{"Solve the task in " + string(module), "Explain any assumptions in comments"},
		Difficulty:   string(difficulty),
		TestCases: []model.TestCase{
			{Description: "Solution addresses the stated task", ExpectedOutput: "Working solution"},
		},
		Module: module,
	}
}
