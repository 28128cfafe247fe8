package validators

import "strings"

// CPFDigits strips everything but 0-9.
func CPFDigits(s string) string {
	return onlyDigits(s)
}

// IsValidCPF checks length, rejects repeated-digit sequences and verifies
// both check digits (mod 11, where remainders 10 and 11 map to 0).
func IsValidCPF(s string) bool {
	cpf := onlyDigits(s)
	if len(cpf) != 11 {
		return false
	}

	if strings.Count(cpf, cpf[:1]) == 11 {
		return false
	}

	d := make([]int, 11)
	for i, r := range cpf {
		d[i] = int(r - '0')
	}

	return checkDigit(d[:9], 10) == d[9] && checkDigit(d[:10], 11) == d[10]
}

func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, v := range digits {
		sum += v * (firstWeight - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		return 0
	}
	return rest
}

// FormatCPF renders ###.###.###-##. Inputs that do not carry exactly
// 11 digits come back as their digits.
func FormatCPF(s string) string {
	cpf := onlyDigits(s)
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
