package validation

import (
	"strconv"
	"strings"
	"unicode"

	"beresinBack/internal/models"
)

// ValidateServiceInput checks the raw create/update form fields and returns
// every violation as a client-facing Indonesian message. Callers join the
// slice into one 400 response.
func ValidateServiceInput(in models.ServiceInput) []string {
	var errs []string

	if strings.TrimSpace(in.NameOfService) == "" {
		errs = append(errs, "Nama jasa wajib diisi.")
	}

	category := strings.TrimSpace(in.CategoryID)
	if category == "" {
		errs = append(errs, "Kategori wajib dipilih.")
	} else if _, err := strconv.Atoi(category); err != nil {
		errs = append(errs, "Kategori tidak valid.")
	}

	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, "Deskripsi wajib diisi.")
	}

	minRaw := strings.TrimSpace(in.MinPrice)
	maxRaw := strings.TrimSpace(in.MaxPrice)
	if minRaw == "" {
		errs = append(errs, "Harga minimal wajib diisi.")
	}
	if maxRaw == "" {
		errs = append(errs, "Harga maksimal wajib diisi.")
	}
	if minRaw != "" && maxRaw != "" {
		minPrice := ParseCurrency(minRaw)
		maxPrice := ParseCurrency(maxRaw)
		if minPrice <= 0 {
			errs = append(errs, "Harga minimal harus lebih dari nol.")
		}
		if minPrice > maxPrice {
			errs = append(errs, "Harga minimal tidak boleh melebihi harga maksimal.")
		}
	}

	return errs
}

// ParseCurrency turns a formatted currency string ("Rp 10.000", "10,000",
// "15000") into its numeric value by keeping only the digits. Anything
// without digits parses to zero.
func ParseCurrency(s string) int {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
