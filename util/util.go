package util

import (
	"os"

	"golang.org/x/exp/constraints"
)

func EnsureDir(dir string) {
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		panic("Could not create dir " + dir + ": " + err.Error())
	}
}

func Reverse[A any](items []A) []A {
	res := make([]A, len(items))
	for i, v := range items {
		res[len(items)-1-i] = v
	}
	return res
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	return Min(Max(v, lo), hi)
}
