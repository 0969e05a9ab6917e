package sheet

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SanitizeName", func() {
	It("removes every comma", func() {
		Expect(SanitizeName("Juan Pérez, hijo")).To(Equal("Juan Pérez hijo"))
		Expect(SanitizeName("a,b,c")).To(Equal("abc"))
	})

	It("trims surrounding whitespace", func() {
		Expect(SanitizeName("  María López  ")).To(Equal("María López"))
	})

	It("keeps empty input empty", func() {
		Expect(SanitizeName("")).To(Equal(""))
	})

	It("reduces comma-only input to empty", func() {
		Expect(SanitizeName(" ,,, ")).To(Equal(""))
	})
})

var _ = Describe("ResolveSender", func() {
	var (
		name        string
		operationID string
		date        string
		timeOfDay   string
		sender      string
	)

	BeforeEach(func() {
		name = ""
		operationID = ""
		date = ""
		timeOfDay = ""
	})

	JustBeforeEach(func() {
		sender = ResolveSender(name, operationID, date, timeOfDay)
	})

	When("the name is present", func() {
		BeforeEach(func() {
			name = "Juan Pérez, hijo"
			operationID = "789"
			date = "2024-02-11"
			timeOfDay = "14:30"
		})

		It("returns the sanitized name", func() {
			Expect(sender).To(Equal("Juan Pérez hijo"))
		})
	})

	When("the name sanitizes to nothing", func() {
		BeforeEach(func() {
			name = " , "
			operationID = "789"
		})

		It("falls back to the operation id", func() {
			Expect(sender).To(Equal("789"))
		})
	})

	When("only the operation id is present", func() {
		BeforeEach(func() {
			operationID = "OP-4521"
		})

		It("returns the id verbatim", func() {
			Expect(sender).To(Equal("OP-4521"))
		})
	})

	When("only the date and time are present", func() {
		BeforeEach(func() {
			date = "2024-02-11"
			timeOfDay = "14:30:00"
		})

		It("joins them with a space", func() {
			Expect(sender).To(Equal("2024-02-11 14:30:00"))
		})
	})

	When("only the date is present", func() {
		BeforeEach(func() {
			date = "2024-02-11"
		})

		It("returns the sentinel", func() {
			Expect(sender).To(Equal(UnknownSender))
		})
	})

	When("only the time is present", func() {
		BeforeEach(func() {
			timeOfDay = "14:30:00"
		})

		It("returns the sentinel", func() {
			Expect(sender).To(Equal(UnknownSender))
		})
	})

	When("every field is empty", func() {
		It("returns the sentinel", func() {
			Expect(sender).To(Equal("SIN_EMISOR"))
		})
	})
})
