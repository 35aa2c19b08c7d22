package binding_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

var _ = Describe("Request builder", func() {
	var op *binding.Operation[widgetParams, listWidgetsRequest, listWidgetsResponse]

	BeforeEach(func() {
		op = listWidgets(&fakeWidgets{})
	})

	build := func(inputs binding.Inputs) *listWidgetsRequest {
		bc, err := op.Bind(inputs)
		Expect(err).NotTo(HaveOccurred())
		return op.Build(bc.Params)
	}

	It("should copy only supplied flat fields", func() {
		req := build(binding.Inputs{"Owner": "me", "MaxResult": 10, "NextToken": nil, "Sort": "ASC"})
		Expect(req.MaxResults).To(HaveValue(Equal(int32(10))))
		Expect(req.Sort).To(Equal(sortOrder("ASC")))
		Expect(req.NextToken).To(BeNil())
		Expect(req.Tags).To(BeNil())
	})

	It("should omit a nested structure when none of its fields were supplied", func() {
		req := build(binding.Inputs{"Owner": "me"})
		Expect(req.Filter).To(BeNil())
	})

	It("should include a nested structure holding exactly the supplied fields", func() {
		req := build(binding.Inputs{"Owner": "me", "Filter_Name": "gear"})
		Expect(req.Filter).NotTo(BeNil())
		Expect(req.Filter.Name).To(HaveValue(Equal("gear")))
		Expect(req.Filter.Enabled).To(BeNil())
	})

	It("should treat an explicit false as present", func() {
		req := build(binding.Inputs{"Owner": "me", "Filter_Enabled": false})
		Expect(req.Filter).NotTo(BeNil())
		Expect(req.Filter.Enabled).To(HaveValue(BeFalse()))
	})

	It("should send an explicitly empty collection", func() {
		req := build(binding.Inputs{"Owner": "me", "Tags": []string{}})
		Expect(req.Tags).NotTo(BeNil())
		Expect(req.Tags).To(BeEmpty())
	})

	It("should build structurally equal requests from the same context", func() {
		bc, err := op.Bind(binding.Inputs{"Owner": "me", "MaxResult": 5, "Filter_Name": "gear", "Tags": []string{"x"}})
		Expect(err).NotTo(HaveOccurred())
		first := op.Build(bc.Params)
		second := op.Build(bc.Params)
		Expect(second).To(Equal(first))
		Expect(second).NotTo(BeIdenticalTo(first))
		Expect(second.Filter).NotTo(BeIdenticalTo(first.Filter))
	})

	Describe("Nested", func() {
		type inner struct{ A *string }
		type outer struct {
			Inner *inner
			B     *int32
		}

		It("should drop a parent whose only child was dropped", func() {
			child := binding.NewNested[inner]()
			child.Track(binding.Opt(&child.Fields().A, nil))

			parent := binding.NewNested[outer]()
			parent.Track(binding.Child(&parent.Fields().Inner, child.Result()))
			Expect(parent.Empty()).To(BeTrue())
			Expect(parent.Result()).To(BeNil())
		})

		It("should keep a parent when a grandchild field was set", func() {
			child := binding.NewNested[inner]()
			child.Track(binding.Opt(&child.Fields().A, strPtr("x")))

			parent := binding.NewNested[outer]()
			parent.Track(binding.Child(&parent.Fields().Inner, child.Result()))
			Expect(parent.Result()).To(Equal(&outer{Inner: &inner{A: strPtr("x")}}))
		})
	})
})
