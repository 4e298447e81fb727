package catalog

// Category groups topic nodes into roadmap sections.
type Category string

const (
	CategoryFundamentals   Category = "fundamentals"
	CategoryBuildingBlocks Category = "building-blocks"
	CategoryPatterns       Category = "patterns"
	CategoryProblems       Category = "problems"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFundamentals,
		CategoryBuildingBlocks,
		CategoryPatterns,
		CategoryProblems,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFundamentals, CategoryBuildingBlocks, CategoryPatterns, CategoryProblems:
		return true
	default:
		return false
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryFundamentals:
		return "Fundamentals"
	case CategoryBuildingBlocks:
		return "Building Blocks"
	case CategoryPatterns:
		return "Patterns"
	case CategoryProblems:
		return "Problems"
	default:
		return string(c)
	}
}

// QuizQuestion is a multiple-choice question attached to a topic.
type QuizQuestion struct {
	Question    string   `yaml:"question" toml:"question"`
	Options     []string `yaml:"options" toml:"options"`
	Answer      int      `yaml:"answer" toml:"answer"` // index into Options
	Explanation string   `yaml:"explanation,omitempty" toml:"explanation,omitempty"`
}

// TopicNode is a single unit of learning content on the roadmap.
// Only ID and Category matter to progress tracking; the rest is display data.
type TopicNode struct {
	ID       string         `yaml:"id" toml:"id"`
	Category Category       `yaml:"category" toml:"category"`
	Title    string         `yaml:"title" toml:"title"`
	Summary  string         `yaml:"summary,omitempty" toml:"summary,omitempty"`
	Content  string         `yaml:"content,omitempty" toml:"content,omitempty"`
	Tips     []string       `yaml:"tips,omitempty" toml:"tips,omitempty"`
	Related  []string       `yaml:"related,omitempty" toml:"related,omitempty"`
	Quiz     []QuizQuestion `yaml:"quiz,omitempty" toml:"quiz,omitempty"`
}

// Edge is a directed "learn this before that" link drawn on the roadmap.
type Edge struct {
	From string `yaml:"from" toml:"from"`
	To   string `yaml:"to" toml:"to"`
}
