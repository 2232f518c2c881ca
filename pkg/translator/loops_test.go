package translator

import "testing"

func TestRangeFor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Canonical Ascending",
			input:    "for (int i = 0; i < 3; i++) { cout << i << endl; }",
			expected: "for i in range(0, 3):\n    print(i)",
		},
		{
			name:     "Inclusive Literal Bound Widens",
			input:    "for (int i = 1; i <= 5; i++) { cout << i; }",
			expected: "for i in range(1, 6):\n    print(i)",
		},
		{
			name:     "Inclusive Expression Bound",
			input:    "int n = 4; for (int i = 0; i <= n; i++) { cout << i; }",
			expected: "n = 4\nfor i in range(0, (n) + 1):\n    print(i)",
		},
		{
			name:     "Variable Bounds",
			input:    "for (int i = a; i < b; i++) { cout << i; }",
			expected: "for i in range(a, b):\n    print(i)",
		},
		{
			name:     "Literal Step",
			input:    "for (int i = 0; i < 10; i += 2) { cout << i; }",
			expected: "for i in range(0, 10, 2):\n    print(i)",
		},
		{
			name:     "Assignment Initializer",
			input:    "for (i = 0; i < 3; i++) { cout << i; }",
			expected: "for i in range(0, 3):\n    print(i)",
		},
		{
			name:     "Empty Body Fills Pass",
			input:    "for (int i = 0; i < 3; i++) { }",
			expected: "for i in range(0, 3):\n    pass",
		},
		{
			name:     "Nested Loops Indent",
			input:    "for (int i = 0; i < 2; i++) { for (int j = 0; j < 2; j++) { cout << i << j; } }",
			expected: "for i in range(0, 2):\n    for j in range(0, 2):\n        print(i, j)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gen(t, tt.input)
			if got != tt.expected {
				t.Errorf("Generate = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestWhileFor covers the loops the range strategy must refuse: a missing
// part, a condition that is not a < or <= on the loop variable, or a
// descending bound. They all lower to an explicit while.
func TestWhileFor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Missing Condition",
			input:    "for (int i = 0; ; i++) { break; }",
			expected: "i = 0\nwhile True:\n    break\n    i = i + 1",
		},
		{
			name:     "Missing Iterator",
			input:    "for (int i = 0; i < 3; ) { i = i + 2; }",
			expected: "i = 0\nwhile (i < 3):\n    i = (i + 2)",
		},
		{
			name:     "Missing Initializer",
			input:    "int i = 0; for (; i < 3; i++) { cout << i; }",
			expected: "i = 0\nwhile (i < 3):\n    print(i)\n    i = i + 1",
		},
		{
			name:     "Descending Loop",
			input:    "for (int i = 3; i > 0; i--) { cout << i; }",
			expected: "i = 3\nwhile (i > 0):\n    print(i)\n    i = i - 1",
		},
		{
			name:     "Compound Step Down",
			input:    "for (int i = 10; i > 0; i -= 2) { cout << i; }",
			expected: "i = 10\nwhile (i > 0):\n    print(i)\n    i = (i - 2)",
		},
		{
			name:     "Condition Not On Loop Variable",
			input:    "int n = 5; for (int i = 0; n < 3; i++) { }",
			expected: "n = 5\ni = 0\nwhile (n < 3):\n    i = i + 1",
		},
		{
			name:     "Everything Missing",
			input:    "for (;;) { }",
			expected: "while True:\n    pass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gen(t, tt.input)
			if got != tt.expected {
				t.Errorf("Generate = %q, want %q", got, tt.expected)
			}
		})
	}
}
