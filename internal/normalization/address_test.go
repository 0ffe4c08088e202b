package normalization

import "testing"

func TestNormalizeAddressStripsStreetNumberPadding(t *testing.T) {
	got := NormalizeAddress([]string{"0017 RUE DE LA GABARRE", "64500 SAINT-JEAN-DE-LUZ"})
	want := "17 RUE DE LA GABARRE 64500 SAINT-JEAN-DE-LUZ"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestNormalizeAddressLeavesBareNumbersAlone(t *testing.T) {
	got := NormalizeAddress([]string{"62 AV DE LA ROUDET", "33500 LIBOURNE"})
	want := "62 AV DE LA ROUDET 33500 LIBOURNE"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestNormalizeAddressOnlyRewritesLeadingToken(t *testing.T) {
	// The padded-number rule applies at the start of a line only; a postal
	// code mid-line keeps its zeros.
	got := NormalizeAddress([]string{"RES LE PINTEY 0012"})
	if got != "RES LE PINTEY 0012" {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}

func TestNormalizeAddressCollapsesWhitespace(t *testing.T) {
	got := NormalizeAddress([]string{"  17   RUE  DE LA   GABARRE ", "64500  SAINT-JEAN-DE-LUZ"})
	want := "17 RUE DE LA GABARRE 64500 SAINT-JEAN-DE-LUZ"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestNormalizeAddressAllZeros(t *testing.T) {
	got := NormalizeAddress([]string{"0000 RUE HAUTE"})
	want := "0 RUE HAUTE"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestNormalizeAddressEmpty(t *testing.T) {
	if got := NormalizeAddress(nil); got != "" {
		t.Fatalf("expected empty string got %q", got)
	}
	if got := NormalizeAddressLines(nil); got != nil {
		t.Fatalf("expected nil got %v", got)
	}
}

func TestNormalizeAddressLinesPreservesOrder(t *testing.T) {
	got := NormalizeAddressLines([]string{"0168 AV DU PRESIDENT WILSON", "93100 MONTREUIL"})
	if len(got) != 2 || got[0] != "168 AV DU PRESIDENT WILSON" || got[1] != "93100 MONTREUIL" {
		t.Fatalf("unexpected lines: %v", got)
	}
}
