package sheet

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CheckFields", func() {
	When("every field parses", func() {
		It("returns no warnings", func() {
			Expect(CheckFields("1234,56", "2024-02-11", "14:30:00")).To(BeEmpty())
		})

		It("accepts integer amounts and short times", func() {
			Expect(CheckFields("1500", "2024-02-11", "14:30")).To(BeEmpty())
		})

		It("accepts the degraded zero amount with missing date and time", func() {
			Expect(CheckFields("0", "", "")).To(BeEmpty())
		})
	})

	When("the amount is not numeric", func() {
		It("warns about the amount", func() {
			warnings := CheckFields("12,34,56", "2024-02-11", "14:30:00")
			Expect(warnings).To(HaveLen(1))
			Expect(warnings[0]).To(ContainSubstring("monto"))
		})

		It("warns when normalization produced an empty string", func() {
			Expect(CheckFields("", "", "")).To(HaveLen(1))
		})
	})

	When("the date has the wrong shape", func() {
		It("warns about the date", func() {
			warnings := CheckFields("1500", "11/02/2024", "")
			Expect(warnings).To(HaveLen(1))
			Expect(warnings[0]).To(ContainSubstring("fecha"))
		})
	})

	When("the time has the wrong shape", func() {
		It("warns about the time", func() {
			warnings := CheckFields("1500", "", "2pm")
			Expect(warnings).To(HaveLen(1))
			Expect(warnings[0]).To(ContainSubstring("horario"))
		})
	})

	When("several fields fail", func() {
		It("collects one warning per field", func() {
			Expect(CheckFields("abc", "ayer", "mediodía")).To(HaveLen(3))
		})
	})
})
