package tafqit

import (
	"encoding/json"
	"testing"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"818", EGP},
			{"egp", EGP},
			{"EGP", EGP},
			{"682", SAR},
			{"sar", SAR},
			{"SAR", SAR},
			{"414", KWD},
			{"kwd", KWD},
			{"KWD", KWD},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "E£", "BTC", "JPY",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{EGP, 2},
		{SAR, 2},
		{USD, 2},
		{KWD, 3},
		{TND, 3},
		{OMR, 3},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Num(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "999"},
		{EGP, "818"},
		{USD, "840"},
		{BHD, "048"},
	}
	for _, tt := range tests {
		got := tt.curr.Num()
		if got != tt.want {
			t.Errorf("%v.Num() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{EGP, "EGP"},
		{SAR, "SAR"},
		{YER, "YER"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Units(t *testing.T) {
	tests := []struct {
		curr                  Currency
		wantUnit, wantSubunit string
	}{
		{EGP, "جنيه مصري", "قرش"},
		{SAR, "ريال سعودي", "هللة"},
		{KWD, "دينار كويتي", "فلس"},
		{OMR, "ريال عماني", "بيسة"},
		{TND, "دينار تونسي", "مليم"},
		{USD, "دولار أمريكي", "سنت"},
		{XXX, "وحدة", ""},
	}
	for _, tt := range tests {
		if got := tt.curr.Unit(); got != tt.wantUnit {
			t.Errorf("%v.Unit() = %q, want %q", tt.curr, got, tt.wantUnit)
		}
		if got := tt.curr.Subunit(); got != tt.wantSubunit {
			t.Errorf("%v.Subunit() = %q, want %q", tt.curr, got, tt.wantSubunit)
		}
	}
}

func TestCurrency_Lookups(t *testing.T) {
	// Every currency must carry a complete row in every lookup table.
	for c := XXX; c <= YER; c++ {
		if c.Code() == "" {
			t.Errorf("currency %d has no code", c)
		}
		if c.Num() == "" {
			t.Errorf("%v has no numeric code", c)
		}
		if c.Unit() == "" {
			t.Errorf("%v has no unit noun", c)
		}
		if c != XXX && c.Subunit() == "" {
			t.Errorf("%v has no subunit noun", c)
		}
		if s := c.Scale(); s != 0 && s != 2 && s != 3 {
			t.Errorf("%v.Scale() = %v, want 0, 2 or 3", c, s)
		}
		got, err := ParseCurr(c.Code())
		if err != nil || got != c {
			t.Errorf("ParseCurr(%q) = %v, %v, want %v", c.Code(), got, err, c)
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(EGP)
		if err != nil {
			t.Fatalf("json.Marshal(EGP) failed: %v", err)
		}
		if string(got) != `"EGP"` {
			t.Errorf("json.Marshal(EGP) = %s, want %q", got, `"EGP"`)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte(`"SAR"`), &c); err != nil {
			t.Fatalf("json.Unmarshal(\"SAR\") failed: %v", err)
		}
		if c != SAR {
			t.Errorf("json.Unmarshal(\"SAR\") = %v, want %v", c, SAR)
		}
	})

	t.Run("unmarshal error", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte(`"UUU"`), &c); err == nil {
			t.Errorf("json.Unmarshal(\"UUU\") did not fail")
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	text, err := EGP.MarshalText()
	if err != nil {
		t.Fatalf("EGP.MarshalText() failed: %v", err)
	}
	if string(text) != "EGP" {
		t.Errorf("EGP.MarshalText() = %q, want %q", text, "EGP")
	}

	var c Currency
	if err := c.UnmarshalText([]byte("KWD")); err != nil {
		t.Fatalf("UnmarshalText(\"KWD\") failed: %v", err)
	}
	if c != KWD {
		t.Errorf("UnmarshalText(\"KWD\") = %v, want %v", c, KWD)
	}
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var c Currency
		if err := c.Scan("EGP"); err != nil {
			t.Fatalf("c.Scan(\"EGP\") failed: %v", err)
		}
		if c != EGP {
			t.Errorf("c.Scan(\"EGP\") = %v, want %v", c, EGP)
		}
	})

	t.Run("[]byte", func(t *testing.T) {
		var c Currency
		if err := c.Scan([]byte("SAR")); err != nil {
			t.Fatalf("c.Scan([]byte(\"SAR\")) failed: %v", err)
		}
		if c != SAR {
			t.Errorf("c.Scan([]byte(\"SAR\")) = %v, want %v", c, SAR)
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		if err := c.Scan(nil); err == nil {
			t.Errorf("c.Scan(nil) did not fail")
		}
		if err := c.Scan(42); err == nil {
			t.Errorf("c.Scan(42) did not fail")
		}
	})
}

func TestCurrency_Value(t *testing.T) {
	got, err := EGP.Value()
	if err != nil {
		t.Fatalf("EGP.Value() failed: %v", err)
	}
	if got != "EGP" {
		t.Errorf("EGP.Value() = %v, want %q", got, "EGP")
	}
}

func TestNullCurrency_Scan(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		var n NullCurrency
		if err := n.Scan(nil); err != nil {
			t.Fatalf("n.Scan(nil) failed: %v", err)
		}
		if n.Valid {
			t.Errorf("n.Scan(nil): Valid = true, want false")
		}
	})

	t.Run("string", func(t *testing.T) {
		var n NullCurrency
		if err := n.Scan("EGP"); err != nil {
			t.Fatalf("n.Scan(\"EGP\") failed: %v", err)
		}
		if !n.Valid || n.Currency != EGP {
			t.Errorf("n.Scan(\"EGP\") = %+v, want valid EGP", n)
		}
	})

	t.Run("error", func(t *testing.T) {
		var n NullCurrency
		if err := n.Scan("UUU"); err == nil {
			t.Errorf("n.Scan(\"UUU\") did not fail")
		}
	})
}

func TestNullCurrency_JSON(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		var n NullCurrency
		got, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("json.Marshal(null currency) failed: %v", err)
		}
		if string(got) != "null" {
			t.Errorf("json.Marshal(null currency) = %s, want null", got)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		n := NullCurrency{Currency: SAR, Valid: true}
		data, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("json.Marshal(%+v) failed: %v", n, err)
		}
		var got NullCurrency
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
		}
		if got != n {
			t.Errorf("round trip = %+v, want %+v", got, n)
		}
	})
}
