package services

// Carousel is the index arithmetic of the testimonial carousel. The zero
// value is an empty carousel.
type Carousel struct {
	n     int
	index int
}

// NewCarousel creates a carousel over n items positioned at start, wrapped
// into range.
func NewCarousel(n, start int) Carousel {
	c := Carousel{n: n}
	c.index = c.wrap(start)
	return c
}

// Len returns the number of items.
func (c Carousel) Len() int { return c.n }

// Empty reports whether there is nothing to show.
func (c Carousel) Empty() bool { return c.n == 0 }

// Index returns the current position.
func (c Carousel) Index() int { return c.index }

// Next returns the position after the current one, wrapping to 0.
func (c Carousel) Next() int { return c.wrap(c.index + 1) }

// Prev returns the position before the current one, wrapping to the end.
func (c Carousel) Prev() int { return c.wrap(c.index - 1) }

// At normalises any integer position into range.
func (c Carousel) At(i int) int { return c.wrap(i) }

func (c Carousel) wrap(i int) int {
	if c.n == 0 {
		return 0
	}
	return ((i % c.n) + c.n) % c.n
}
