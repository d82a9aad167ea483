package merkletree

import "testing"

func Test_isPow2(t *testing.T) {
	type args struct {
		size uint
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			"16 is a power of two",
			args{
				16,
			},
			true,
		},
		{
			"zero is not a power of two",
			args{
				0,
			},
			false,
		},
		{
			"1 is a power of two",
			args{
				1,
			},
			true,
		},
		{
			"17 is not a power of two (first bit is set, edge case)",
			args{
				17,
			},
			false,
		},
		{
			"18 is not a power of two",
			args{
				18,
			},
			false,
		},
		{
			"3 is not a power of two",
			args{
				3,
			},
			false,
		},
		{
			"6 is not a power of two (even but composite)",
			args{
				6,
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPow2(tt.args.size); got != tt.want {
				t.Errorf("isPow2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_log2Pow2(t *testing.T) {
	tests := []struct {
		size uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 3},
		{16, 4},
		{1 << 32, 32},
	}
	for _, tt := range tests {
		if got := Log2Pow2(tt.size); got != tt.want {
			t.Errorf("Log2Pow2(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
