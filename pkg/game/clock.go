package game

// FrameClock 单调递增的帧时钟
// 所有截止时间（拾取到期、火箭存活、重砸上升）都与它比较
type FrameClock struct {
	now          float64
	deltaTime    float64
	maxDeltaTime float64
	frame        uint64
}

// NewFrameClock 创建帧时钟
// maxDeltaTime > 0 时单帧时间步被截断到该值，避免卡顿后出现超大步长
func NewFrameClock(maxDeltaTime float64) *FrameClock {
	return &FrameClock{maxDeltaTime: maxDeltaTime}
}

// Advance 推进一帧，返回实际使用的时间步
func (c *FrameClock) Advance(dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	if c.maxDeltaTime > 0 && dt > c.maxDeltaTime {
		dt = c.maxDeltaTime
	}
	c.deltaTime = dt
	c.now += dt
	c.frame++
	return dt
}

// Now 返回当前模拟时间（秒）
func (c *FrameClock) Now() float64 {
	return c.now
}

// DeltaTime 返回本帧时间步（秒）
func (c *FrameClock) DeltaTime() float64 {
	return c.deltaTime
}

// Frame 返回已推进的帧数
func (c *FrameClock) Frame() uint64 {
	return c.frame
}
