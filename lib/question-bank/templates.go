package questionbank

import "talent-screen-backend/models"

// Curated question lists per role and level. Role keys are normalized
// position names (lowercase, spaces/hyphens to underscores).
var roleTemplates = map[string]map[models.Seniority][]string{
	"data_analyst": {
		models.JuniorLevel: {
			"Explain the difference between INNER JOIN and LEFT JOIN in SQL with an example.",
			"How would you clean and preprocess a dataset with missing values?",
			"What are some common data visualization best practices?",
			"How would you calculate year-over-year growth in SQL or Excel?",
			"Explain the difference between a primary key and a foreign key.",
		},
		models.MidLevel: {
			"How would you design a dashboard to track business KPIs for management?",
			"Explain the difference between a clustered and non-clustered index in SQL.",
			"How would you handle inconsistent date formats in a dataset?",
			"Explain window functions in SQL and give an example.",
			"How do you choose the right chart type for different data types?",
		},
	},
	"data_scientist": {
		models.JuniorLevel: {
			"What is the difference between supervised and unsupervised learning?",
			"How do you handle imbalanced datasets in classification problems?",
			"Explain the concept of overfitting and how to prevent it.",
			"What evaluation metrics would you use for a regression model?",
			"Explain the difference between precision and recall.",
		},
		models.MidLevel: {
			"How would you select features for a predictive model?",
			"Explain cross-validation and why it's important.",
			"How would you handle multicollinearity in a dataset?",
			"Explain how you would deploy a trained ML model to production.",
			"Describe how you would design an A/B test for a new product feature.",
		},
	},
	"sql_developer": {
		models.JuniorLevel: {
			"Explain the difference between WHERE and HAVING clauses in SQL.",
			"What are indexes in SQL and why are they used?",
			"Write a query to find the second highest salary from an Employee table.",
			"Explain the concept of normalization in databases.",
			"What is the difference between DELETE, TRUNCATE, and DROP?",
		},
		models.MidLevel: {
			"How would you optimize a slow SQL query?",
			"Explain CTE (Common Table Expressions) and when to use them.",
			"How would you design a database schema for an e-commerce system?",
			"Explain the difference between OLTP and OLAP databases.",
			"Describe how you would handle database partitioning.",
		},
	},
	"powerbi_developer": {
		models.JuniorLevel: {
			"Explain the difference between calculated columns and measures in Power BI.",
			"What are slicers and filters in Power BI and when to use them?",
			"How would you connect Power BI to a SQL Server database?",
			"Explain the difference between import mode and direct query mode.",
			"What is the purpose of Power Query in Power BI?",
		},
		models.MidLevel: {
			"How would you optimize a slow Power BI dashboard?",
			"Explain DAX functions with an example.",
			"How would you implement row-level security in Power BI?",
			"Explain the difference between star schema and snowflake schema.",
			"How do you schedule automatic data refreshes in Power BI?",
		},
	},
	"data_engineer": {
		models.JuniorLevel: {
			"Explain the difference between ETL and ELT.",
			"What are some common data formats used in big data systems?",
			"How would you design a basic data pipeline?",
			"Explain batch processing vs. stream processing.",
			"What are primary considerations for storing raw vs. processed data?",
		},
		models.MidLevel: {
			"How would you optimize a large-scale data pipeline?",
			"Explain the role of Apache Spark in big data processing.",
			"Describe how you would handle schema evolution in a data lake.",
			"How would you ensure data quality in an ingestion pipeline?",
			"Explain partitioning and bucketing in distributed data systems.",
		},
	},
	"ml_engineer": {
		models.JuniorLevel: {
			"What is the difference between training and inference in ML?",
			"Explain the purpose of a validation set in model training.",
			"How do you handle categorical variables in ML?",
			"What is the difference between logistic regression and linear regression?",
			"Explain the purpose of a confusion matrix.",
		},
		models.MidLevel: {
			"How would you deploy a machine learning model in production?",
			"Explain the concept of model drift and how to detect it.",
			"How would you choose between different ML algorithms for a problem?",
			"Explain how you would monitor the performance of a deployed model.",
			"Describe how you would build a scalable model serving architecture.",
		},
	},
	"ai_ml_engineer": {
		models.JuniorLevel: {
			"Explain the difference between AI, ML, and Deep Learning.",
			"What are neural networks and how do they work?",
			"Explain the concept of activation functions in neural networks.",
			"What is transfer learning and when would you use it?",
			"Explain the purpose of embeddings in NLP.",
		},
		models.MidLevel: {
			"How would you fine-tune a pre-trained deep learning model?",
			"Explain how transformers work in NLP.",
			"Describe how you would implement an object detection system.",
			"How would you scale AI model training for large datasets?",
			"Explain the challenges of deploying AI systems in production.",
		},
	},
	"ai_engineer": {
		models.JuniorLevel: {
			"What is AI and how is it different from traditional programming?",
			"Explain rule-based AI vs. learning-based AI.",
			"What is the purpose of a knowledge graph?",
			"Explain the concept of natural language understanding.",
			"What are some ethical considerations in AI development?",
		},
		models.MidLevel: {
			"How would you design an AI-powered recommendation system?",
			"Explain the concept of reinforcement learning.",
			"Describe how you would integrate AI into an existing business workflow.",
			"How would you ensure fairness and bias mitigation in AI models?",
			"Explain the challenges of explainable AI (XAI).",
		},
	},
}

// per-tech generic questions used to top up short role lists
var techTemplates = map[string]map[models.Seniority]string{
	"python": {
		models.JuniorLevel: "What is the difference between a list and a tuple in Python?",
		models.MidLevel:    "Explain how Python's garbage collection works.",
		models.SeniorLevel: "How would you optimize a Python application for better performance?",
	},
	"javascript": {
		models.JuniorLevel: "What is the difference between let, const, and var in JavaScript?",
		models.MidLevel:    "Explain how closures work in JavaScript with an example.",
		models.SeniorLevel: "How would you handle memory leaks in a JavaScript application?",
	},
	"react": {
		models.JuniorLevel: "What is the difference between functional and class components in React?",
		models.MidLevel:    "Explain the React component lifecycle methods.",
		models.SeniorLevel: "How would you optimize a React application for better performance?",
	},
	"java": {
		models.JuniorLevel: "What is the difference between abstract classes and interfaces in Java?",
		models.MidLevel:    "Explain how garbage collection works in Java.",
		models.SeniorLevel: "How would you design a scalable Java application architecture?",
	},
}

var fallbackQuestions = []string{
	"Describe your approach to debugging code when you encounter an error.",
	"How do you ensure code quality and maintainability in your projects?",
	"How do you stay updated with the latest technologies and best practices?",
	"Tell me about a challenging project you've worked on.",
	"What's your experience with version control systems like Git?",
}
