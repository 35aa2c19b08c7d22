package binding_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

var _ = Describe("Binder", func() {
	Describe("aliases", func() {
		It("should resolve an obsolete name to its canonical parameter", func() {
			b := binding.NewBinder(binding.Inputs{"MaxItems": 25}, binding.AliasTable{"MaxItems": "MaxResult"})
			Expect(b.Err()).NotTo(HaveOccurred())
			Expect(b.Has("MaxItems")).To(BeFalse())
			Expect(*binding.Optional[int32](b, "MaxResult")).To(Equal(int32(25)))
		})

		It("should reject an alias supplied together with its canonical name", func() {
			b := binding.NewBinder(binding.Inputs{"MaxItems": 25, "MaxResult": 10}, binding.AliasTable{"MaxItems": "MaxResult"})
			var conflict *binding.ConfigurationError
			Expect(errors.As(b.Err(), &conflict)).To(BeTrue())
			Expect(conflict.Reason).To(ContainSubstring("MaxItems"))
		})
	})

	Describe("Optional", func() {
		It("should return nil for absent and nil values", func() {
			b := binding.NewBinder(binding.Inputs{"NextToken": nil}, nil)
			Expect(binding.Optional[string](b, "NextToken")).To(BeNil())
			Expect(binding.Optional[string](b, "Sort")).To(BeNil())
			Expect(b.Err()).NotTo(HaveOccurred())
		})

		It("should keep explicit zero and false values", func() {
			b := binding.NewBinder(binding.Inputs{"MaxResult": int32(0), "Enabled": false}, nil)
			Expect(binding.Optional[int32](b, "MaxResult")).To(HaveValue(Equal(int32(0))))
			Expect(binding.Optional[bool](b, "Enabled")).To(HaveValue(BeFalse()))
		})

		It("should convert JSON numbers to integers", func() {
			b := binding.NewBinder(binding.Inputs{"MaxResult": float64(10)}, nil)
			Expect(binding.Optional[int32](b, "MaxResult")).To(HaveValue(Equal(int32(10))))
		})

		It("should accept pointer values", func() {
			b := binding.NewBinder(binding.Inputs{"Sort": strPtr("ASC")}, nil)
			Expect(binding.Optional[string](b, "Sort")).To(HaveValue(Equal("ASC")))
		})

		It("should reject values of the wrong type", func() {
			b := binding.NewBinder(binding.Inputs{"MaxResult": "ten", "Ratio": 1.5}, nil)
			Expect(binding.Optional[int32](b, "MaxResult")).To(BeNil())
			Expect(binding.Optional[int32](b, "Ratio")).To(BeNil())

			var invalid *binding.InvalidParameterError
			Expect(errors.As(b.Err(), &invalid)).To(BeTrue())
			Expect(invalid.Field).To(Equal("MaxResult"))
		})

		It("should reject integers that overflow the target type", func() {
			b := binding.NewBinder(binding.Inputs{"MaxResult": int64(1) << 40}, nil)
			Expect(binding.Optional[int32](b, "MaxResult")).To(BeNil())
			Expect(b.Err()).To(MatchError(ContainSubstring("overflows int32")))
		})
	})

	Describe("collections", func() {
		It("should copy slices so later caller mutation has no effect", func() {
			tags := []string{"a", "b"}
			b := binding.NewBinder(binding.Inputs{"Tags": tags}, nil)
			bound := binding.Slice[string](b, "Tags")
			tags[0] = "mutated"
			Expect(bound).To(Equal([]string{"a", "b"}))
		})

		It("should convert untyped JSON arrays", func() {
			b := binding.NewBinder(binding.Inputs{"Tags": []any{"a", "b"}}, nil)
			Expect(binding.Slice[string](b, "Tags")).To(Equal([]string{"a", "b"}))
		})

		It("should bind a single value as a one element collection", func() {
			b := binding.NewBinder(binding.Inputs{"Tags": "only"}, nil)
			Expect(binding.Slice[string](b, "Tags")).To(Equal([]string{"only"}))
		})

		It("should copy maps", func() {
			attrs := map[string]string{"k": "v"}
			b := binding.NewBinder(binding.Inputs{"Attrs": attrs}, nil)
			bound := binding.Map[string](b, "Attrs")
			attrs["k"] = "mutated"
			Expect(bound).To(Equal(map[string]string{"k": "v"}))
		})

		It("should reject a non map value for a map parameter", func() {
			b := binding.NewBinder(binding.Inputs{"Attrs": []string{"k"}}, nil)
			Expect(binding.Map[string](b, "Attrs")).To(BeNil())
			Expect(b.Err()).To(HaveOccurred())
		})
	})
})
