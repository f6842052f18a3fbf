package ui

import "fmt"

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonDanger    ButtonVariant = "danger"
)

type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

const buttonBase = "inline-flex items-center justify-center font-medium transition-colors focus:outline-none " +
	"focus:ring-2 focus:ring-offset-2 disabled:opacity-50 disabled:cursor-not-allowed rounded-lg"

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:   "bg-primary-600 text-white hover:bg-primary-700 focus:ring-primary-500",
	ButtonSecondary: "bg-dark-100 text-dark-900 hover:bg-dark-200 focus:ring-dark-500",
	ButtonOutline:   "border-2 border-dark-300 text-dark-700 hover:bg-dark-50 focus:ring-dark-500",
	ButtonGhost:     "text-dark-700 hover:bg-dark-100 focus:ring-dark-500",
	ButtonDanger:    "bg-red-600 text-white hover:bg-red-700 focus:ring-red-500",
}

var buttonSizes = map[ButtonSize]string{
	ButtonSmall:  "px-3 py-1.5 text-sm gap-1.5",
	ButtonMedium: "px-4 py-2 text-base gap-2",
	ButtonLarge:  "px-6 py-3 text-lg gap-2.5",
}

// Button describes a rendered button or button-styled link
type Button struct {
	Label    string
	Variant  ButtonVariant
	Size     ButtonSize
	Icon     string
	Href     string
	Type     string
	Class    string
	Loading  bool
	Disabled bool
}

// NewButton builds a button from key/value pairs, as used from templates:
// btn "label" "Approve" "variant" "primary" "icon" "check".
func NewButton(pairs ...string) (Button, error) {
	if len(pairs)%2 != 0 {
		return Button{}, fmt.Errorf("button: odd number of arguments")
	}

	b := Button{}
	for i := 0; i < len(pairs); i += 2 {
		key, value := pairs[i], pairs[i+1]
		switch key {
		case "label":
			b.Label = value
		case "variant":
			b.Variant = ButtonVariant(value)
		case "size":
			b.Size = ButtonSize(value)
		case "icon":
			b.Icon = value
		case "href":
			b.Href = value
		case "type":
			b.Type = value
		case "class":
			b.Class = value
		case "loading":
			b.Loading = value == "true"
		case "disabled":
			b.Disabled = value == "true"
		default:
			return Button{}, fmt.Errorf("button: unknown attribute %q", key)
		}
	}
	return b, nil
}

// Classes returns the full class list. Unknown variants and sizes fall back to primary and md.
func (b Button) Classes() string {
	variant, ok := buttonVariants[b.Variant]
	if !ok {
		variant = buttonVariants[ButtonPrimary]
	}
	size, ok := buttonSizes[b.Size]
	if !ok {
		size = buttonSizes[ButtonMedium]
	}
	return Classes(buttonBase, variant, size, b.Class)
}

// IsDisabled reports whether the button should refuse interaction
func (b Button) IsDisabled() bool {
	return b.Disabled || b.Loading
}

// IsLink reports whether the button renders as an anchor
func (b Button) IsLink() bool {
	return b.Href != "" && !b.IsDisabled()
}

// ButtonType is the type attribute of a <button>, "button" unless set
func (b Button) ButtonType() string {
	if b.Type == "" {
		return "button"
	}
	return b.Type
}

// LeadingIcon is the icon shown before the label; loading replaces it with a spinner
func (b Button) LeadingIcon() string {
	if b.Loading {
		return "spinner"
	}
	return b.Icon
}
