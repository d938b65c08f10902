// SPDX-License-Identifier: EPL-2.0

package metadata

// Product is the name recorded in the fixed comment of every stream.
const Product = "oggexport"

// ProductComment is always the first comment of a stream.
const ProductComment = "ENCODER=" + Product

// MaxComments caps the number of comments embedded in the comment header.
// Entries past the cap are dropped without error.
const MaxComments = 10

// Tags are the optional text fields a user can attach to an export.
type Tags struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   string
}

// Comments builds the KEY=value comment list for t.
//
// The list starts with ProductComment, followed by the non-empty fields in
// title, artist, album, genre, year order, truncated to MaxComments.
func Comments(t Tags) []string {
	fields := [...]struct {
		key, value string
	}{
		{"TITLE", t.Title},
		{"ARTIST", t.Artist},
		{"ALBUM", t.Album},
		{"GENRE", t.Genre},
		{"YEAR", t.Year},
	}

	comments := make([]string, 0, len(fields)+1)
	comments = append(comments, ProductComment)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		comments = append(comments, f.key+"="+f.value)
	}

	return limit(comments, MaxComments)
}

func limit(comments []string, n int) []string {
	if len(comments) > n {
		return comments[:n]
	}
	return comments
}
