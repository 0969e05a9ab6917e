package sheet

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FormatLine", func() {
	var rules RuleSet

	BeforeEach(func() {
		rules = DefaultRules()
	})

	When("the recipient matches the routed pair in upper case", func() {
		It("quotes the sender and pads eight commas", func() {
			line := FormatLine(rules, "Juan Pérez hijo", "1500", "JESSICA ANDREA GIULIANI")
			Expect(line).To(Equal(`"Juan Pérez hijo",,,,,,,,1500`))
		})
	})

	When("the recipient matches the routed pair in lower case", func() {
		It("produces the identical structure", func() {
			line := FormatLine(rules, "Juan Pérez hijo", "1500", "jessica andrea giuliani")
			Expect(line).To(Equal(`"Juan Pérez hijo",,,,,,,,1500`))
		})
	})

	When("the recipient contains only half of the routed pair", func() {
		It("falls through to the bare amount", func() {
			Expect(FormatLine(rules, "Alguien", "250,75", "Giuliani Hnos")).To(Equal("250,75"))
		})
	})

	When("the recipient contains credibank", func() {
		It("routes regardless of the rest of the name", func() {
			Expect(FormatLine(rules, "Juan Pérez hijo", "1500", "Credibank SA")).To(Equal(`"Juan Pérez hijo",,,,,,,,1500`))
		})
	})

	When("the recipient is anyone else", func() {
		It("returns the bare amount", func() {
			Expect(FormatLine(rules, "Juan Pérez hijo", "1234,56", "Banco Galicia")).To(Equal("1234,56"))
		})
	})

	When("the recipient is empty", func() {
		It("returns the bare amount", func() {
			Expect(FormatLine(rules, "SIN_EMISOR", "0", "")).To(Equal("0"))
		})
	})

	It("places the amount in the ninth comma-separated field", func() {
		line := FormatLine(rules, "Emisor", "1500", "credibank")
		fields := strings.Split(line, ",")
		Expect(fields).To(HaveLen(9))
		Expect(fields[0]).To(Equal(`"Emisor"`))
		Expect(fields[8]).To(Equal("1500"))
	})
})

var _ = Describe("LoadRules", func() {
	var (
		path  string
		rules RuleSet
		err   error
	)

	JustBeforeEach(func() {
		rules, err = LoadRules(path)
	})

	When("the file declares custom routed recipients", func() {
		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "rules.yaml")
			content := "routed:\n  - all: [\"ACME\", \"Holdings\"]\n  - all: [\"credibank\"]\n"
			Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		})

		It("loads and lowercases the substrings", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(rules.Routed).To(HaveLen(2))
			Expect(rules.Routed[0].All).To(Equal([]string{"acme", "holdings"}))
		})

		It("matches against the loaded table", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(rules.Matches("Acme Holdings SRL")).To(BeTrue())
			Expect(rules.Matches("jessica andrea giuliani")).To(BeFalse())
		})
	})

	When("the file declares no rules", func() {
		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "rules.yaml")
			Expect(os.WriteFile(path, []byte("routed: []\n"), 0644)).To(Succeed())
		})

		It("returns an error", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("a rule has no substrings", func() {
		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "rules.yaml")
			Expect(os.WriteFile(path, []byte("routed:\n  - all: []\n"), 0644)).To(Succeed())
		})

		It("returns an error", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the file does not exist", func() {
		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "missing.yaml")
		})

		It("returns an error", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})
