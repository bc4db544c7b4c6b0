package utils

import (
	"math/rand"
	"time"
)

// PRNG 可设定种子的随机数源
// 刷怪位置、敌人类型和拾取物类型都从这里取，固定种子时整局可复现
type PRNG struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNG 创建随机数源，seed 为 0 时使用当前时间
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed 返回实际使用的种子
func (p *PRNG) Seed() int64 {
	return p.seed
}

// Intn 返回 [0, n) 内的整数，n <= 0 时返回 0
func (p *PRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return p.rng.Intn(n)
}

// Float64 返回 [0, 1) 内的浮点数
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Range 返回 [min, max) 内的浮点数
func (p *PRNG) Range(min, max float64) float64 {
	return min + p.rng.Float64()*(max-min)
}
