package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())

	a, ok := c.BySlug("getting-started-with-docker-containers")
	require.True(t, ok)
	assert.Equal(t, 2, a.ID)
	assert.Equal(t, "DEVOPS", a.Category)
	assert.Equal(t, []string{"Docker", "DevOps", "Containers"}, a.Tags)
	assert.Equal(t, time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC), a.Date)
	assert.False(t, a.HasHeroImage())

	first, ok := c.BySlug("optimising-llm-inputs-json-vs-toon-explained")
	require.True(t, ok)
	assert.True(t, first.HasHeroImage())
}

func TestBySlug_Unknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, ok := c.BySlug("does-not-exist")
	assert.False(t, ok)
}

func TestAll_ReturnsCopies(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	list := c.All()
	list[0].Title = "changed"
	list[0].Tags[0] = "changed"

	again := c.All()
	assert.NotEqual(t, "changed", again[0].Title)
	assert.NotEqual(t, "changed", again[0].Tags[0])
}

func TestCategoryCounts(t *testing.T) {
	c, err := FromArticles([]Article{
		{ID: 1, Slug: "a", Category: "CSS", ReadTime: 1, Tags: []string{"x", "y"}},
		{ID: 2, Slug: "b", Category: "AI", ReadTime: 1, Tags: []string{"y"}},
		{ID: 3, Slug: "c", Category: "CSS", ReadTime: 1, Tags: []string{"z"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []CategoryCount{{Name: "CSS", Count: 2}, {Name: "AI", Count: 1}}, c.CategoryCounts())
	assert.Equal(t, []string{"CSS", "AI"}, c.Categories())
	assert.Equal(t, []string{"x", "y", "z"}, c.Tags())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name: "duplicate id",
			input: `
[[article]]
id = 1
slug = "a"
date = "2023-01-01"
readTime = 1

[[article]]
id = 1
slug = "b"
date = "2023-01-02"
readTime = 1
`,
			wantErr: ErrDuplicateID,
		},
		{
			name: "duplicate slug",
			input: `
[[article]]
id = 1
slug = "a"
date = "2023-01-01"
readTime = 1

[[article]]
id = 2
slug = "a"
date = "2023-01-02"
readTime = 1
`,
			wantErr: ErrDuplicateSlug,
		},
		{
			name: "invalid date",
			input: `
[[article]]
id = 1
slug = "a"
date = "26 Oct 2023"
readTime = 1
`,
			wantErr: ErrInvalidDate,
		},
		{
			name: "empty slug",
			input: `
[[article]]
id = 1
date = "2023-01-01"
readTime = 1
`,
			wantErr: ErrInvalidSlug,
		},
		{
			name: "zero read time",
			input: `
[[article]]
id = 1
slug = "a"
date = "2023-01-01"
`,
			wantErr: ErrInvalidRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader("[[article]\nid = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestDates(t *testing.T) {
	a := Article{Date: time.Date(2023, 10, 6, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Oct 06, 2023", a.ShortDate())
	assert.Equal(t, "October 6, 2023", a.LongDate())
	assert.Equal(t, "2023-10-06", a.ISODate())
}
