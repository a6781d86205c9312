package render

// Class tokens of the site stylesheet, one set per element kind.
const (
	classH1            = "text-3xl font-bold mt-8 mb-4 text-foreground"
	classH2            = "text-2xl font-bold mt-8 mb-4 text-foreground"
	classH3            = "text-xl font-bold mt-6 mb-3 text-foreground"
	classParagraph     = "mb-4 text-foreground leading-relaxed"
	classPre           = "bg-muted rounded-lg p-4 overflow-x-auto mb-6 border border-border"
	classBlockquote    = "border-l-4 border-primary pl-4 italic my-6 text-muted-foreground"
	classUnorderedList = "list-disc list-inside mb-4 space-y-2 text-foreground"
	classOrderedList   = "list-decimal list-inside mb-4 space-y-2 text-foreground"
	classListItem      = "text-foreground"
	classLink          = "text-primary hover:underline"
	classInlineCode    = "px-1.5 py-0.5 rounded bg-muted text-foreground font-mono text-sm"
	classCodeWrapper   = "relative group"
	classCopyButton    = "copy-button"
	classTable         = "table-auto mb-6"
)

func headingClass(level int) string {
	switch level {
	case 1:
		return classH1
	case 2:
		return classH2
	case 3:
		return classH3
	default:
		return ""
	}
}
