package usecase

import "testing"

func TestIsElectronicsQuery(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  bool
	}{
		{
			name:  "iphone is electronics",
			query: "iPhone 15",
			want:  true,
		},
		{
			name:  "samsung galaxy is electronics",
			query: "Samsung Galaxy S24",
			want:  true,
		},
		{
			name:  "laptop is electronics",
			query: "Dell gaming laptop",
			want:  true,
		},
		{
			name:  "earbuds are electronics",
			query: "boAt wireless earbuds",
			want:  true,
		},
		{
			name:  "appliance is electronics",
			query: "LG washing machine 7kg",
			want:  true,
		},
		{
			name:  "clothing is general",
			query: "cotton kurta",
			want:  false,
		},
		{
			name:  "shoes are general",
			query: "running shoes",
			want:  false,
		},
		{
			name:  "empty query is general",
			query: "",
			want:  false,
		},
		{
			name:  "matching is case-insensitive",
			query: "MACBOOK Pro M3",
			want:  true,
		},
		{
			name:  "keyword inside a word still matches",
			query: "smartphone case", // substring matching, same as the platform eligibility rule
			want:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsElectronicsQuery(tc.query); got != tc.want {
				t.Errorf("IsElectronicsQuery(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestIsElectronicsQueryIsPure(t *testing.T) {
	// The classifier is called multiple times per request path; repeated
	// calls with the same query must agree.
	for i := 0; i < 5; i++ {
		if !IsElectronicsQuery("iPhone 15") {
			t.Fatal("IsElectronicsQuery(\"iPhone 15\") changed answer across calls")
		}
		if IsElectronicsQuery("cotton kurta") {
			t.Fatal("IsElectronicsQuery(\"cotton kurta\") changed answer across calls")
		}
	}
}
