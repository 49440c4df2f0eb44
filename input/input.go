package input

// Command is a parsed request. It is either *Get or *Post.
type Command interface {
	URL() string
	command()
}

// Get is a GET request without a body.
type Get struct {
	url string
}

// NewGet returns a Get command after validating rawURL.
func NewGet(rawURL string) (*Get, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Get{url: u}, nil
}

func (g *Get) URL() string {
	return g.url
}

func (g *Get) command() {}

// Post is a POST request whose body is built from form pairs.
type Post struct {
	url   string
	pairs []FormPair
}

// NewPost returns a Post command. Every item of rawPairs must be a key=value token;
// the first one that is not fails the whole command.
func NewPost(rawURL string, rawPairs []string) (*Post, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	pairs := make([]FormPair, 0, len(rawPairs))
	for _, raw := range rawPairs {
		pair, err := ParseFormPair(raw)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return &Post{url: u, pairs: pairs}, nil
}

func (p *Post) URL() string {
	return p.url
}

// Pairs returns the form pairs in the order they were given.
func (p *Post) Pairs() []FormPair {
	pairs := make([]FormPair, len(p.pairs))
	copy(pairs, p.pairs)
	return pairs
}

// Body collapses the pairs into a mapping. A later pair overwrites an earlier one
// with the same key.
func (p *Post) Body() map[string]string {
	body := make(map[string]string, len(p.pairs))
	for _, pair := range p.pairs {
		body[pair.Key] = pair.Value
	}
	return body
}

func (p *Post) command() {}

type FormPair struct {
	Key   string
	Value string
}
