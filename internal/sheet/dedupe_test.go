package sheet

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DuplicateIDs", func() {
	It("reports duplicates in second-occurrence order", func() {
		Expect(DuplicateIDs([]string{"A", "B", "A", "", "B", "C"})).To(Equal([]string{"A", "B"}))
	})

	It("reports an id once no matter how often it recurs", func() {
		Expect(DuplicateIDs([]string{"X", "X", "X", "X"})).To(Equal([]string{"X"}))
	})

	It("never reports empty ids", func() {
		Expect(DuplicateIDs([]string{"", "", ""})).To(BeEmpty())
	})

	It("returns nothing when every id is unique", func() {
		Expect(DuplicateIDs([]string{"A", "B", "C"})).To(BeEmpty())
	})

	It("orders by when the second occurrence appears, not the first", func() {
		Expect(DuplicateIDs([]string{"B", "A", "A", "B"})).To(Equal([]string{"A", "B"}))
	})

	It("handles an empty batch", func() {
		Expect(DuplicateIDs(nil)).To(BeEmpty())
	})
})
