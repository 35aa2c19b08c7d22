package binding_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
	"github.com/nandemo-ya/awscmdlet/internal/logging"
)

var _ = Describe("Output projection", func() {
	var (
		fake *fakeWidgets
		op   *binding.Operation[widgetParams, listWidgetsRequest, listWidgetsResponse]
		page *listWidgetsResponse
	)

	BeforeEach(func() {
		page = &listWidgetsResponse{Items: []string{"w1", "w2"}, NextToken: strPtr("")}
		fake = &fakeWidgets{pages: map[string]*listWidgetsResponse{"": page}}
		op = listWidgets(fake)
	})

	Describe("ParseSelector", func() {
		DescribeTable("kinds",
			func(expr string, kind binding.SelectorKind, name string) {
				k, n, err := binding.ParseSelector(expr)
				Expect(err).NotTo(HaveOccurred())
				Expect(k).To(Equal(kind))
				Expect(n).To(Equal(name))
			},
			Entry("whole", "*", binding.SelectWhole, ""),
			Entry("field", "Items", binding.SelectField, "Items"),
			Entry("input echo", "^Owner", binding.SelectInputEcho, "Owner"),
		)

		DescribeTable("invalid expressions",
			func(expr string) {
				_, _, err := binding.ParseSelector(expr)
				var invalid *binding.InvalidProjectionError
				Expect(errors.As(err, &invalid)).To(BeTrue())
			},
			Entry("empty", ""),
			Entry("bare caret", "^"),
			Entry("spaces", "Items Next"),
		)
	})

	It("should default to the list field", func() {
		out := op.Execute(ctx(), binding.Inputs{"Owner": "me"}, nil)
		Expect(out.Err).NotTo(HaveOccurred())
		Expect(out.Value).To(Equal([]string{"w1", "w2"}))
	})

	It("should surface the whole response for *", func() {
		out := op.Execute(ctx(), binding.Inputs{"Owner": "me", "Select": "*"}, nil)
		Expect(out.Value).To(BeIdenticalTo(page))
	})

	It("should resolve field names case-insensitively", func() {
		out := op.Execute(ctx(), binding.Inputs{"Owner": "me", "Select": "nexttoken"}, nil)
		Expect(out.Err).NotTo(HaveOccurred())
		Expect(out.Value).To(Equal(strPtr("")))
	})

	It("should echo an input parameter", func() {
		out := op.Execute(ctx(), binding.Inputs{"Owner": "me", "Select": "^owner"}, nil)
		Expect(out.Value).To(Equal("me"))
	})

	It("should echo the PassThru parameter", func() {
		out := op.Execute(ctx(), binding.Inputs{"Owner": "me", "PassThru": true}, nil)
		Expect(out.Value).To(Equal("me"))
	})

	It("should apply a custom projector", func() {
		projector := binding.Projector[listWidgetsResponse](func(r *listWidgetsResponse, inv *binding.Invocation) (any, error) {
			return len(r.Items), nil
		})
		out := op.Execute(ctx(), binding.Inputs{"Owner": "me"}, nil, binding.WithProjector(projector))
		Expect(out.Value).To(Equal(2))
	})

	Describe("bind time validation", func() {
		expectBindError := func(inputs binding.Inputs, target any, opts ...binding.BindOption) {
			_, err := op.Bind(inputs, opts...)
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, target)).To(BeTrue())
			Expect(binding.IsBindError(err)).To(BeTrue())

			out := op.Execute(ctx(), inputs, nil, opts...)
			Expect(out.Kind).To(Equal(binding.OutcomeBindError))
			Expect(fake.requests).To(BeEmpty())
		}

		It("should reject an unknown response field", func() {
			var invalid *binding.InvalidProjectionError
			expectBindError(binding.Inputs{"Owner": "me", "Select": "Bogus"}, &invalid)
			Expect(invalid.Reason).To(ContainSubstring("Items"))
		})

		It("should reject an unknown echoed parameter", func() {
			var invalid *binding.InvalidProjectionError
			expectBindError(binding.Inputs{"Owner": "me", "Select": "^Bogus"}, &invalid)
		})

		It("should reject PassThru combined with a selector", func() {
			var conflict *binding.ConfigurationError
			expectBindError(binding.Inputs{"Owner": "me", "Select": "Items", "PassThru": true}, &conflict)
		})

		It("should reject PassThru combined with a custom projector", func() {
			var conflict *binding.ConfigurationError
			projector := binding.Projector[listWidgetsResponse](func(*listWidgetsResponse, *binding.Invocation) (any, error) { return nil, nil })
			expectBindError(binding.Inputs{"Owner": "me", "PassThru": true}, &conflict, binding.WithProjector(projector))
		})

		It("should reject a projector for a different response type", func() {
			var invalid *binding.InvalidProjectionError
			projector := binding.Projector[string](func(*string, *binding.Invocation) (any, error) { return nil, nil })
			expectBindError(binding.Inputs{"Owner": "me"}, &invalid, binding.WithProjector(projector))
		})

		It("should reject a missing required parameter by name", func() {
			var missing *binding.MissingRequiredFieldError
			expectBindError(binding.Inputs{"MaxResult": 10}, &missing)
			Expect(missing.Field).To(Equal("Owner"))
		})

		It("should reject an input that names no parameter", func() {
			var invalid *binding.InvalidParameterError
			expectBindError(binding.Inputs{"Owner": "me", "MaxResult": 5, "Srot": "DESC"}, &invalid)
			Expect(invalid.Field).To(Equal("Srot"))
			Expect(errors.Is(invalid, binding.ErrUnknownParameter)).To(BeTrue())
		})

		It("should suggest the parameter an input differs from only by case", func() {
			var invalid *binding.InvalidParameterError
			expectBindError(binding.Inputs{"owner": "me", "Owner": "me"}, &invalid)
			Expect(invalid.Field).To(Equal("owner"))
			Expect(invalid.Error()).To(ContainSubstring(`did you mean "Owner"`))
		})

		It("should reject an explicitly empty enum value", func() {
			var invalid *binding.InvalidParameterError
			expectBindError(binding.Inputs{"Owner": "me", "Sort": ""}, &invalid)
			Expect(invalid.Field).To(Equal("Sort"))
		})
	})

	It("should accept aliases and framework switches alongside parameters", func() {
		bc, err := op.Bind(binding.Inputs{"Owner": "me", "MaxItems": 5, "Sort": "DESC", "PassThru": true})
		Expect(err).NotTo(HaveOccurred())
		Expect(*bc.Params.MaxResult).To(Equal(int32(5)))
		Expect(*bc.Params.Sort).To(Equal("DESC"))
	})

	It("should continue without a required parameter when lenient", func() {
		bc, err := op.Bind(binding.Inputs{}, binding.Lenient(logging.Discard()))
		Expect(err).NotTo(HaveOccurred())
		Expect(bc.Params.Owner).To(BeNil())
	})

	It("should not expose framework switches as inputs", func() {
		bc, err := op.Bind(binding.Inputs{"Owner": "me", "Select": "*", "NoAutoIteration": true})
		Expect(err).NotTo(HaveOccurred())
		Expect(bc.NoAutoIteration).To(BeTrue())
		Expect(bc.Inputs).To(Equal(binding.Inputs{"Owner": "me"}))
	})
})
