package roadmap

// DefaultCurriculum is the compiled-in software-engineering
// curriculum used when no YAML file is supplied.
func DefaultCurriculum() *Curriculum {
	return &Curriculum{
		ID:   "software-engineering",
		Name: "Software Engineering",
		Years: []Year{
			{
				Number:           1,
				RequiredProgress: 0,
				Entries: []Entry{
					{
						Slug:      "programming-fundamentals",
						Name:      "Programming Fundamentals",
						Subtopics: []string{"variables", "control-flow", "functions", "collections", "io"},
					},
					{
						Slug:      "version-control",
						Name:      "Version Control",
						Subtopics: []string{"commits", "branching", "merging", "remotes"},
					},
					{
						Slug:      "linux-basics",
						Name:      "Linux Basics",
						Subtopics: []string{"shell", "filesystem", "permissions", "processes"},
					},
				},
			},
			{
				Number:           2,
				RequiredProgress: 70,
				Entries: []Entry{
					{
						Slug:      "data-structures",
						Name:      "Data Structures & Algorithms",
						Subtopics: []string{"arrays", "linked-lists", "trees", "graphs", "sorting", "complexity"},
					},
					{
						Slug:      "databases",
						Name:      "Databases",
						Subtopics: []string{"modeling", "sql", "indexes", "transactions"},
					},
					{
						Slug:         "tech-stack-hub",
						Name:         "Choose Your Stack",
						TechStackHub: true,
						Tracks: []Entry{
							{
								Slug:      "frontend",
								Name:      "Frontend Track",
								Subtopics: []string{"html-css", "javascript", "frameworks", "accessibility"},
							},
							{
								Slug:      "backend",
								Name:      "Backend Track",
								Subtopics: []string{"http", "apis", "auth", "caching"},
							},
							{
								Slug:      "devops",
								Name:      "DevOps Track",
								Subtopics: []string{"ci-cd", "containers", "monitoring", "iac"},
							},
						},
					},
				},
			},
			{
				Number:           3,
				RequiredProgress: 75,
				Entries: []Entry{
					{
						Slug:      "system-design",
						Name:      "System Design",
						Subtopics: []string{"scalability", "load-balancing", "messaging", "storage-design"},
					},
					{
						Slug:      "testing",
						Name:      "Testing & Quality",
						Subtopics: []string{"unit-testing", "integration-testing", "tdd", "code-review"},
					},
				},
			},
			{
				Number:           4,
				RequiredProgress: 80,
				Entries: []Entry{
					{
						Slug:      "distributed-systems",
						Name:      "Distributed Systems",
						Subtopics: []string{"consensus", "replication", "partitioning", "failure-modes"},
					},
					{
						Slug:      "security",
						Name:      "Security",
						Subtopics: []string{"threat-modeling", "crypto-basics", "web-security", "secrets"},
					},
				},
			},
		},
	}
}
