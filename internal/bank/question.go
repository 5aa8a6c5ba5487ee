package bank

// Question is a single questionnaire item.
type Question struct {
	ID       string
	Category Category
	Text     string
	Only     Constraint // Any unless the item is half of a sex-specific pair
}

// AppliesTo reports whether the question is asked of a respondent of sex s.
func (q Question) AppliesTo(s Sex) bool {
	return q.Only.Admits(s)
}

// Item is a question placed in the flattened effective bank.
type Item struct {
	Number   int // 1-based position across the whole bank
	Category Category
	Index    int // 0-based position within the category
	Question Question
}

// Point is one step on the answer scale.
type Point struct {
	Value   int
	Label   string
	English string
}

// MinAnswer and MaxAnswer bound a valid answer value.
const (
	MinAnswer = 1
	MaxAnswer = 5
)

var scale = [MaxAnswer]Point{
	{Value: 1, Label: "从不/没有", English: "Never"},
	{Value: 2, Label: "偶尔/轻度", English: "Rarely"},
	{Value: 3, Label: "有时/中度", English: "Sometimes"},
	{Value: 4, Label: "经常/较重", English: "Often"},
	{Value: 5, Label: "总是/严重", English: "Always"},
}

// Scale returns the five answer points in ascending order.
func Scale() []Point {
	out := make([]Point, len(scale))
	copy(out, scale[:])
	return out
}

// ValidAnswer reports whether v is on the scale.
func ValidAnswer(v int) bool {
	return v >= MinAnswer && v <= MaxAnswer
}
