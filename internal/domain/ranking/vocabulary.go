package ranking

// Vocabulary holds the keyword lists used by the keyword ranker. It is
// injected rather than hard-coded so the lists can be versioned and tested
// independently of the scoring arithmetic.
type Vocabulary struct {
	Technology []string
	Education  []string
	Experience []string
	Domain     []string
	EntryLevel []string
}

// DefaultVocabulary returns the built-in term lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Technology: []string{
			"javascript", "python", "java", "react", "node", "sql", "api", "web",
			"software", "developer", "engineer", "frontend", "backend", "fullstack",
			"database", "cloud", "aws", "azure", "docker", "kubernetes", "html", "css",
			"typescript", "mongodb", "postgresql", "mysql", "git", "linux", "windows",
		},
		Education: []string{
			"bachelor", "master", "phd", "degree", "graduate", "university", "college",
		},
		Experience: []string{
			"intern", "junior", "senior", "lead", "manager", "entry", "fresher",
		},
		Domain: []string{
			"fintech", "healthcare", "ecommerce", "startup", "enterprise", "technology", "software",
		},
		EntryLevel: []string{
			"intern", "trainee", "junior", "entry", "graduate",
		},
	}
}
