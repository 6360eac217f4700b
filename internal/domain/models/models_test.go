package models

import "testing"

func TestCTALabel(t *testing.T) {
	in := Product{SKU: "T1", Stock: 3}
	if !in.InStock() || in.CTALabel() != CTAOrder {
		t.Fatalf("in stock: InStock=%v cta=%q", in.InStock(), in.CTALabel())
	}

	out := Product{SKU: "T2", Stock: 0}
	if out.InStock() || out.CTALabel() != CTAOutOfStock {
		t.Fatalf("out of stock: InStock=%v cta=%q", out.InStock(), out.CTALabel())
	}
}
