package filter

import "testing"

func TestBoxKernelUniformWeights(t *testing.T) {
	k := BoxKernel(2)
	if len(k) != 5 {
		t.Fatalf("BoxKernel(2) length = %d, want 5", len(k))
	}
	want := k[0]
	for i, v := range k {
		if v != want {
			t.Errorf("BoxKernel(2)[%d] = %v, want %v (uniform)", i, v, want)
		}
	}
	var sum float32
	for _, v := range k {
		sum += v
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("BoxKernel(2) sums to %v, want ~1.0", sum)
	}
}

func TestBoxKernelNonPositiveRadiusIsIdentity(t *testing.T) {
	k := BoxKernel(0)
	if len(k) != 1 || k[0] != 1 {
		t.Errorf("BoxKernel(0) = %v, want [1]", k)
	}
}

func TestCachedGaussianKernelMatchesUncached(t *testing.T) {
	cached := CachedGaussianKernel(2.5)
	direct := GaussianKernel(2.5)
	if len(cached) != len(direct) {
		t.Fatalf("CachedGaussianKernel length = %d, want %d", len(cached), len(direct))
	}
	for i := range direct {
		if cached[i] != direct[i] {
			t.Errorf("CachedGaussianKernel[%d] = %v, want %v", i, cached[i], direct[i])
		}
	}
}

func TestCachedGaussianKernelReusesEntry(t *testing.T) {
	a := CachedGaussianKernel(1.75)
	b := CachedGaussianKernel(1.75)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel(1.75) returned a freshly allocated slice on the second call, want the cached one")
	}
}

func TestOptimalKernelSizeMatchesGaussianKernelLength(t *testing.T) {
	for _, radius := range []float64{0, 1, 3, 6.5} {
		got := OptimalKernelSize(radius)
		want := len(GaussianKernel(radius))
		if got != want {
			t.Errorf("OptimalKernelSize(%v) = %d, want %d", radius, got, want)
		}
	}
}

func TestKernelCenterIsMidpoint(t *testing.T) {
	if got := KernelCenter(5); got != 2 {
		t.Errorf("KernelCenter(5) = %d, want 2", got)
	}
	if got := KernelCenter(1); got != 0 {
		t.Errorf("KernelCenter(1) = %d, want 0", got)
	}
}
