package binding_test

import (
	"context"
	"slices"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

type widgetParams struct {
	MaxResult      *int32
	NextToken      *string
	Sort           *string
	Owner          *string
	Filter_Name    *string
	Filter_Enabled *bool
	Tags           []string
}

type widgetFilter struct {
	Name    *string
	Enabled *bool
}

type sortOrder string

type listWidgetsRequest struct {
	MaxResults *int32
	NextToken  *string
	Sort       sortOrder
	Owner      *string
	Filter     *widgetFilter
	Tags       []string
}

type listWidgetsResponse struct {
	Items     []string
	NextToken *string
}

// fakeWidgets serves canned pages keyed by continuation token ("" for the first page).
type fakeWidgets struct {
	pages    map[string]*listWidgetsResponse
	err      error
	requests []*listWidgetsRequest
	block    bool
}

func (f *fakeWidgets) call(ctx context.Context, req *listWidgetsRequest) (*listWidgetsResponse, error) {
	f.requests = append(f.requests, req)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	token := ""
	if req.NextToken != nil {
		token = *req.NextToken
	}
	return f.pages[token], nil
}

func strPtr(s string) *string { return &s }

func listWidgets(f *fakeWidgets) *binding.Operation[widgetParams, listWidgetsRequest, listWidgetsResponse] {
	return &binding.Operation[widgetParams, listWidgetsRequest, listWidgetsResponse]{
		Service:  "Widget Service",
		Name:     "ListWidgets",
		Endpoint: "https://widgets.us-east-1.amazonaws.com",
		Params: []binding.Param{
			{Name: "MaxResult", Type: binding.TypeInt32},
			{Name: "NextToken", Type: binding.TypeString},
			{Name: "Sort", Type: binding.TypeEnum},
			{Name: "Owner", Type: binding.TypeString, Required: true},
			{Name: "Filter_Name", Type: binding.TypeString},
			{Name: "Filter_Enabled", Type: binding.TypeBool},
			{Name: "Tags", Type: binding.TypeStrings},
		},
		Aliases:  binding.AliasTable{"MaxItems": "MaxResult"},
		Select:   "Items",
		PassThru: "Owner",
		Fields: binding.FieldTable[listWidgetsResponse]{
			"Items":     func(r *listWidgetsResponse) any { return r.Items },
			"NextToken": func(r *listWidgetsResponse) any { return r.NextToken },
		},
		Paging: &binding.Paging[listWidgetsRequest, listWidgetsResponse]{
			InputToken:  func(r *listWidgetsRequest) *string { return r.NextToken },
			SetToken:    func(r *listWidgetsRequest, t *string) { r.NextToken = t },
			OutputToken: func(r *listWidgetsResponse) *string { return r.NextToken },
			Merge: func(acc, page *listWidgetsResponse) *listWidgetsResponse {
				return &listWidgetsResponse{
					Items:     append(slices.Clip(acc.Items), page.Items...),
					NextToken: page.NextToken,
				}
			},
		},
		BindParams: func(b *binding.Binder) widgetParams {
			return widgetParams{
				MaxResult:      binding.Optional[int32](b, "MaxResult"),
				NextToken:      binding.Optional[string](b, "NextToken"),
				Sort:           binding.Optional[string](b, "Sort"),
				Owner:          binding.Optional[string](b, "Owner"),
				Filter_Name:    binding.Optional[string](b, "Filter_Name"),
				Filter_Enabled: binding.Optional[bool](b, "Filter_Enabled"),
				Tags:           binding.Slice[string](b, "Tags"),
			}
		},
		Build: func(p widgetParams) *listWidgetsRequest {
			req := &listWidgetsRequest{}
			binding.Opt(&req.MaxResults, p.MaxResult)
			binding.Opt(&req.NextToken, p.NextToken)
			binding.Enum(&req.Sort, p.Sort)
			binding.Opt(&req.Owner, p.Owner)
			binding.List(&req.Tags, p.Tags)

			filter := binding.NewNested[widgetFilter]()
			filter.Track(binding.Opt(&filter.Fields().Name, p.Filter_Name))
			filter.Track(binding.Opt(&filter.Fields().Enabled, p.Filter_Enabled))
			req.Filter = filter.Result()
			return req
		},
		Call: f.call,
	}
}
