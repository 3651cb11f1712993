package out

// MessagePicker chooses one text among the options of a category. It only
// ever affects wording, never the category.
type MessagePicker interface {
	Pick(category string, options []string) string
}
