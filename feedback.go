package hime

// FeedbackFunc is the optional per-context feedback callback (spec.md §3
// "feedback_callback and opaque user pointer", §9 "a boxed dynamic
// handler is equivalent" to a C function pointer plus user data — in Go a
// closure already carries its own captured state, so no separate user
// pointer parameter is needed). annotation is normally empty; it carries
// a Hanyu Pinyin romanization on Candidate events from PHO and TSIN when
// the context's pinyin_annotation setting is enabled (SPEC_FULL.md §4.D).
type FeedbackFunc func(event FeedbackEvent, annotation string)

// feedback invokes the context's callback if one is set, with no
// annotation. Never panics on a nil callback (spec.md §7 "every error
// path leaves the context in its prior state" — a feedback call is not
// itself a key result, so a nil callback is simply a no-op, not an
// error).
func (c *Context) feedback(event FeedbackEvent) {
	c.feedbackAnnotated(event, "")
}

// feedbackAnnotated invokes the callback with a romanization annotation,
// suppressing it unless pinyin_annotation is enabled.
func (c *Context) feedbackAnnotated(event FeedbackEvent, pinyin string) {
	if c.Feedback == nil {
		return
	}
	if !c.pinyinAnnotation {
		pinyin = ""
	}
	c.Feedback(event, pinyin)
}
