package whatif

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	hundred := USD(100)
	price := USD(2.5)

	shares := hundred.DivPrice(price)
	if !shares.Equal(Q(40)) {
		t.Errorf("100/2.5 = %v shares want 40", shares)
	}
	if got := price.Mul(shares); !got.Equal(hundred) {
		t.Errorf("2.5*40 = %v want %v", got, hundred)
	}
	if got := hundred.Add(USD(0.55)).Sub(USD(100)); !got.Equal(USD(0.55)) {
		t.Errorf("100+0.55-100 = %v want $0.55 exactly", got)
	}
}

func TestMoneyString(t *testing.T) {
	if got := USD(1234.5).String(); got != "$1,234.50" {
		t.Errorf("String() = %q want %q", got, "$1,234.50")
	}
	if got := USD(10).SignedString(); got != "+$10.00" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := USD(-3).SignedString(); got != "-$3.00" {
		t.Errorf("SignedString() = %q", got)
	}
}

func TestPercent(t *testing.T) {
	if !Percent(42.50004).Equal(42.5) {
		t.Error("Equal() must tolerate tiny differences")
	}
	if Percent(42.6).Equal(42.5) {
		t.Error("Equal() must reject real differences")
	}
	if got := Percent(12.345).String(); got != "12.35%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q want -", got)
	}
}
