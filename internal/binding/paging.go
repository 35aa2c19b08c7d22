package binding

// Paging describes how a listing operation pages through results.
type Paging[Req, Resp any] struct {
	// InputToken returns the continuation token carried by a request.
	InputToken func(req *Req) *string
	// SetToken stores a continuation token on a request.
	SetToken func(req *Req, token *string)
	// OutputToken returns the continuation token of a response page.
	OutputToken func(resp *Resp) *string
	// Merge returns a new response holding the items of acc followed by those of page.
	// Neither argument may be modified.
	Merge func(acc, page *Resp) *Resp
}

// autoIterate reports whether the invocation should follow continuation tokens.
// A caller supplied token pins the call to that single page.
func (pg *Paging[Req, Resp]) autoIterate(req *Req, noAutoIteration bool) bool {
	if pg == nil || noAutoIteration {
		return false
	}
	return pg.InputToken(req) == nil
}

func nextToken(token *string) (string, bool) {
	if token == nil || *token == "" {
		return "", false
	}
	return *token, true
}
