package rest

type ArticleSummary struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	Category      string   `json:"category"`
	CategoryColor string   `json:"categoryColor"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	AuthorName    string   `json:"authorName"`
	Date          string   `json:"date"`
	DisplayDate   string   `json:"displayDate"`
	ReadTime      int      `json:"readTime"`
	Image         string   `json:"image"`
	Tags          []string `json:"tags"`
}

type Article struct {
	ArticleSummary
	HeroImage string `json:"heroImage,omitempty"`
	LongDate  string `json:"longDate"`
}

type Filters struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
	Sort     string `json:"sort"`
	Active   bool   `json:"active"`
}

type NavItem struct {
	Kind   string `json:"kind"`
	Number int    `json:"number,omitempty"`
	Active bool   `json:"active,omitempty"`
}

type NavControl struct {
	Target   int  `json:"target"`
	Disabled bool `json:"disabled"`
}

type Navigation struct {
	Items []NavItem  `json:"items"`
	Prev  NavControl `json:"prev"`
	Next  NavControl `json:"next"`
}

type Listing struct {
	Articles   []ArticleSummary `json:"articles"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	From       int              `json:"from"`
	To         int              `json:"to"`
	Navigation Navigation       `json:"navigation"`
	Filters    Filters          `json:"filters"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	TwitterCard string `json:"twitterCard"`
}

type Token struct {
	Class string `json:"class,omitempty"`
	Text  string `json:"text"`
}

type CodeBlock struct {
	Language string  `json:"language,omitempty"`
	Text     string  `json:"text"`
	Tokens   []Token `json:"tokens"`
}

type Inline struct {
	Kind     string   `json:"kind"`
	Text     string   `json:"text,omitempty"`
	URL      string   `json:"url,omitempty"`
	Title    string   `json:"title,omitempty"`
	Target   string   `json:"target,omitempty"`
	Rel      string   `json:"rel,omitempty"`
	Checked  bool     `json:"checked,omitempty"`
	Children []Inline `json:"children,omitempty"`
}

type Table struct {
	Align  []string     `json:"align"`
	Header [][]Inline   `json:"header"`
	Rows   [][][]Inline `json:"rows"`
}

type Block struct {
	Kind     string     `json:"kind"`
	Level    int        `json:"level,omitempty"`
	ID       string     `json:"id,omitempty"`
	Tight    bool       `json:"tight,omitempty"`
	Ordered  bool       `json:"ordered,omitempty"`
	Start    int        `json:"start,omitempty"`
	Inlines  []Inline   `json:"inlines,omitempty"`
	Children []Block    `json:"children,omitempty"`
	Code     *CodeBlock `json:"code,omitempty"`
	Table    *Table     `json:"table,omitempty"`
}

type ArticleDetail struct {
	Article  Article `json:"article"`
	Meta     Meta    `json:"meta"`
	Blocks   []Block `json:"blocks"`
	HTML     string  `json:"html"`
	Fallback bool    `json:"fallback"`
}

type NotFound struct {
	Error string `json:"error"`
	Back  string `json:"back"`
}
