package notation

import "testing"

func TestRewrite(t *testing.T) {
	r := NewRewriter()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "ic50 plain",
			in:   "the IC50 value was determined",
			want: "the IC$_{50}$ value was determined",
		},
		{
			name: "ic50 spaced and cased",
			in:   "an ic 50 below the cutoff",
			want: "an IC$_{50}$ below the cutoff",
		},
		{
			name: "ic50 parenthesized",
			in:   "IC(50) determination",
			want: "IC$_{50}$ determination",
		},
		{
			name: "carbon dioxide",
			in:   "incubated under 5\\% CO2 atmosphere",
			want: "incubated under 5\\% CO$_2$ atmosphere",
		},
		{
			name: "water formula",
			in:   "dissolved in H2O before use",
			want: "dissolved in H$_2$O before use",
		},
		{
			name: "irradiation dose",
			in:   "a dose of 5 J/cm2 is applied",
			want: "a dose of 5~J/cm$^2$ is applied",
		},
		{
			name: "irradiance",
			in:   "at 1.7 mW/cm2 for 50 min",
			want: "at 1.7~mW/cm$^2$ for 50~min",
		},
		{
			name: "temperature",
			in:   "maintained at 37 °C throughout",
			want: "maintained at 37~°C throughout",
		},
		{
			name: "temperature scan artifact",
			in:   "incubated at 37 0C overnight",
			want: "incubated at 37°C overnight",
		},
		{
			name: "concentration",
			in:   "up to 100 µg/mL of test substance",
			want: "up to 100~µg/mL of test substance",
		},
		{
			name: "percentage",
			in:   "viability above 80 % indicates",
			want: "viability above 80\\% indicates",
		},
		{
			name: "ratio",
			in:   "mixed at 1 : 3 with medium",
			want: "mixed at 1:3 with medium",
		},
		{
			name: "wavelength and time",
			in:   "exposure to 365 nm light for 1 h",
			want: "exposure to 365~nm light for 1~h",
		},
		{
			name: "no notation unchanged",
			in:   "The test substance is applied to the cells.",
			want: "The test substance is applied to the cells.",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Rewrite(tt.in); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewriteIdempotentForPlainText(t *testing.T) {
	r := NewRewriter()
	in := "Cells are seeded twenty-four hours before treatment."
	if got := r.Rewrite(r.Rewrite(in)); got != in {
		t.Errorf("plain text changed on repeated rewrite: %q", got)
	}
}
