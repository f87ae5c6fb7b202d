package hime

import (
	"strings"

	"github.com/google/uuid"
)

// methodState is the active input-method variant, realizing spec.md §9's
// "Polymorphic input methods" design note as a Go interface rather than a
// pointer-dispatch-by-enum switch: PHO, TSIN, GTAB, and Intcode each carry
// their own method-specific buffers behind this one seam.
type methodState interface {
	onKey(ctx *Context, ch byte) KeyResult
	onBackspace(ctx *Context) KeyResult
	onEscapeClear(ctx *Context) bool
	onEnter(ctx *Context) KeyResult
	hasPendingState() bool
	label() string
}

// Virtual key codes the dispatcher recognizes for the handful of control
// keys spec.md §4.D gives special handling (Escape, Enter, Backspace).
// Hosts pass these as keycode; charcode carries the printable Unicode
// character for everything else.
const (
	VKEscape    = 0x1B
	VKEnter     = 0x0D
	VKBackspace = 0x08
)

// Context is a host-owned input context (spec.md §3 "Input context").
// Every exported method tolerates a nil receiver per spec.md §6's
// null-safety contract, returning the documented sentinel with no side
// effects.
type Context struct {
	ID uuid.UUID

	chineseMode bool
	method      Method
	layout      KeyboardLayout
	state       methodState

	candidates    candidateBuffer
	selectionKeys string

	charset        Charset
	candidateStyle CandidateStyle
	colorScheme    ColorScheme
	systemDarkMode bool

	smartPunctuation bool
	pinyinAnnotation bool
	quoteOpenDouble  bool
	quoteOpenSingle  bool

	soundEnabled        bool
	vibrationEnabled    bool
	vibrationDurationMs int

	Feedback FeedbackFunc

	preedit       string
	preeditCursor int
	commit        string

	dataDir string
}

// NewContext creates an independent input context (spec.md §6
// "context_new"). Two contexts never share mutable state (spec.md §8
// "Independence").
func NewContext() *Context {
	c := &Context{
		ID:                  uuid.New(),
		layout:              LayoutStandard,
		method:              MethodPHO,
		state:               newPhoState(),
		candidates:          newCandidateBuffer(),
		selectionKeys:       "1234567890",
		charset:             Traditional,
		vibrationDurationMs: 50,
	}
	return c
}

// ContextFree is a no-op placeholder matching spec.md §6's
// "context_free" — Go contexts are reclaimed by the garbage collector, so
// there is nothing to release explicitly, but the call is kept so hosts
// written against the C-shaped API have a symmetrical lifecycle call.
func ContextFree(ctx *Context) {}

// ContextReset restores a context to its just-created defaults (spec.md
// §6 "context_reset"), preserving only the context's ID from the prior
// session.
func (c *Context) ContextReset() {
	if c == nil {
		return
	}
	id := c.ID
	*c = *NewContext()
	c.ID = id
}

func (c *Context) setPreedit(s string, cursor int) {
	c.preedit = s
	c.preeditCursor = cursor
}

func (c *Context) appendCommit(s string) {
	c.commit += c.convertOutputVariant(s)
}

// ProcessKey is the dispatcher (spec.md §4.D): it applies the universal
// pre-dispatch steps in order, then routes to the active method.
func (c *Context) ProcessKey(keycode int, charcode rune, modifiers Modifier) KeyResult {
	if c == nil || !c.chineseMode {
		return Ignored
	}

	// Step 2: selection-key commit.
	if c.candidates.count() > 0 && charcode >= 0 && charcode < 128 {
		if pos := strings.IndexByte(c.selectionKeys, byte(charcode)); pos >= 0 {
			if idx, ok := c.candidates.globalIndex(pos); ok {
				return c.commitCandidateAt(idx)
			}
		}
	}

	// Step 3: Escape.
	if keycode == VKEscape {
		had := c.state.onEscapeClear(c)
		c.ResetPunctuationState()
		if had {
			return Absorbed
		}
		return Ignored
	}

	// Step 4: Enter.
	if keycode == VKEnter {
		result := c.state.onEnter(c)
		c.feedback(FeedbackKeyEnter)
		return result
	}

	// Step 5: Backspace.
	if keycode == VKBackspace {
		result := c.state.onBackspace(c)
		if result != Ignored {
			c.feedback(FeedbackKeyDelete)
		}
		return result
	}

	// Step 6: dispatch to the active method.
	if charcode < 0 || charcode > 0x7F {
		return Ignored
	}
	if charcode == ' ' {
		c.feedback(FeedbackKeySpace)
	}
	result := c.state.onKey(c, byte(charcode))
	if result != Ignored {
		c.feedback(FeedbackKeyPress)
	}
	return result
}

// commitCandidateAt finalizes candidate i: writes it to commit, clears the
// active method's pending input, and returns Commit.
func (c *Context) commitCandidateAt(i int) KeyResult {
	cand, ok := c.candidates.at(i)
	if !ok {
		return Ignored
	}
	pinyin := c.currentSyllablePinyin()
	c.state.onEscapeClear(c)
	c.appendCommit(cand)
	c.feedbackAnnotated(FeedbackCandidate, pinyin)
	return Commit
}

// currentSyllablePinyin derives the annotation spec.md's supplemented
// pinyin_annotation behavior attaches to a selection commit, for PHO/TSIN
// only (SPEC_FULL.md §4.D).
func (c *Context) currentSyllablePinyin() string {
	switch s := c.state.(type) {
	case *phoState:
		return HanyuPinyin(s.syllable)
	case *tsinState:
		return HanyuPinyin(s.syllable)
	default:
		return ""
	}
}

// SelectCandidate implements spec.md §6 "select_candidate(i)": i is an
// absolute candidate index. Out of range returns Ignored with no state
// change (spec.md §7 "Bounds").
func (c *Context) SelectCandidate(i int) KeyResult {
	if c == nil {
		return Ignored
	}
	if _, ok := c.candidates.at(i); !ok {
		return Ignored
	}
	return c.commitCandidateAt(i)
}

// --- Mode ---

func (c *Context) SetChineseMode(v bool) {
	if c == nil {
		return
	}
	c.chineseMode = v
	c.feedback(FeedbackModeChange)
}

func (c *Context) IsChineseMode() bool {
	if c == nil {
		return false
	}
	return c.chineseMode
}

func (c *Context) ToggleChineseMode() bool {
	if c == nil {
		return false
	}
	c.SetChineseMode(!c.chineseMode)
	return c.chineseMode
}

// SetInputMethod switches the active method variant, per spec.md §6
// "set_input_method". ANTHY and CHEWING are external collaborators
// (spec.md §1) and are rejected here the way an unsupported enum value
// is (spec.md §7 "Unknown enum values").
func (c *Context) SetInputMethod(m Method) bool {
	if c == nil {
		return false
	}
	switch m {
	case MethodPHO:
		c.state = newPhoState()
	case MethodTSIN:
		c.state = newTsinState()
	case MethodGTAB:
		c.state = newGtabState(nil)
	case MethodIntcode:
		c.state = newIntcodeState()
	default:
		return false
	}
	c.method = m
	c.candidates.reset()
	c.setPreedit("", 0)
	c.feedback(FeedbackModeChange)
	return true
}

func (c *Context) GetInputMethod() Method {
	if c == nil {
		return MethodPHO
	}
	return c.method
}

// --- Output ---

func (c *Context) Preedit() string {
	if c == nil {
		return ""
	}
	return c.preedit
}

func (c *Context) PreeditCursor() int {
	if c == nil {
		return 0
	}
	return c.preeditCursor
}

func (c *Context) CommitText() string {
	if c == nil {
		return ""
	}
	return c.commit
}

func (c *Context) ClearCommit() {
	if c == nil {
		return
	}
	c.commit = ""
}

func (c *Context) HasCandidates() bool {
	if c == nil {
		return false
	}
	return c.candidates.count() > 0
}

func (c *Context) CandidateCount() int {
	if c == nil {
		return 0
	}
	return c.candidates.count()
}

// GetCandidate returns candidate i, or "" with ok=false if out of range
// (spec.md §7: hosts treat this as the documented -1 sentinel).
func (c *Context) GetCandidate(i int) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.candidates.at(i)
}

func (c *Context) CandidatePage() int {
	if c == nil {
		return 0
	}
	return c.candidates.page
}

func (c *Context) CandidatesPerPage() int {
	if c == nil {
		return 0
	}
	return c.candidates.perPage
}

// SetCandidatesPerPage clamps n to [1,10] per spec.md §8 "Clamping".
func (c *Context) SetCandidatesPerPage(n int) {
	if c == nil {
		return
	}
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}
	c.candidates.perPage = n
	c.candidates.page = 0
}

func (c *Context) PageUp() bool {
	if c == nil {
		return false
	}
	moved := c.candidates.PageUp()
	if moved {
		c.refreshPagedPreedit()
	}
	return moved
}

func (c *Context) PageDown() bool {
	if c == nil {
		return false
	}
	moved := c.candidates.PageDown()
	if moved {
		c.refreshPagedPreedit()
	}
	return moved
}

// refreshPagedPreedit re-renders the preedit after a page change so the
// visible numbered labels match the new page.
func (c *Context) refreshPagedPreedit() {
	switch s := c.state.(type) {
	case *phoState:
		c.setPreedit(renderWithCandidates(s.syllable.Render(), c.candidates, numericSelectionLabels), 0)
	case *tsinState:
		rendered := renderWithCandidates(s.syllable.Render(), c.candidates, numericSelectionLabels)
		c.setPreedit(s.phrase+rendered, len([]rune(s.phrase)))
	case *gtabState:
		s.renderPreedit(c)
	}
}

// --- Layout ---

func (c *Context) SetKeyboardLayout(l KeyboardLayout) bool {
	if c == nil {
		return false
	}
	if _, ok := layouts[l]; !ok {
		return false
	}
	c.layout = l
	return true
}

func (c *Context) GetKeyboardLayout() KeyboardLayout {
	if c == nil {
		return LayoutStandard
	}
	return c.layout
}

// SetKeyboardLayoutByName resolves one of spec.md §4.S's name aliases.
func (c *Context) SetKeyboardLayoutByName(name string) bool {
	if c == nil {
		return false
	}
	l, ok := LayoutByName(strings.ToLower(name))
	if !ok {
		return false
	}
	return c.SetKeyboardLayout(l)
}

// SetSelectionKeys sets the selection-key string (spec.md §4.D step 2).
// An empty string is rejected, matching the "bounded string" setter
// contract of spec.md §4.S.
func (c *Context) SetSelectionKeys(keys string) bool {
	if c == nil || keys == "" {
		return false
	}
	c.selectionKeys = keys
	return true
}

func (c *Context) GetSelectionKeys() string {
	if c == nil {
		return ""
	}
	return c.selectionKeys
}

// --- Method label (spec.md §4.D) ---

func (c *Context) MethodLabel() string {
	if c == nil || !c.chineseMode {
		return "en"
	}
	return c.state.label()
}

// --- GTAB ---

// SetGtabTable attaches tbl as the context's active GTAB table and adopts
// its preferred selection keys, and switches the method to GTAB if it
// is not already (spec.md §6 "gtab_load_table" implies the host then
// drives the context with it).
func (c *Context) SetGtabTable(tbl *GtabTable) {
	if c == nil || tbl == nil {
		return
	}
	c.method = MethodGTAB
	c.state = newGtabState(tbl)
	if tbl.Selkey != "" {
		c.selectionKeys = tbl.Selkey
	}
	c.candidates.reset()
	c.setPreedit("", 0)
}

func (c *Context) CurrentGtabTable() *GtabTable {
	if c == nil {
		return nil
	}
	if s, ok := c.state.(*gtabState); ok {
		return s.table
	}
	return nil
}

func (c *Context) GtabIsValidKey(ch byte) bool {
	if c == nil {
		return false
	}
	s, ok := c.state.(*gtabState)
	if !ok || s.table == nil {
		return false
	}
	return s.table.IsValidKey(ch)
}

// --- Intcode ---

func (c *Context) IntcodeSetMode(mode IntcodeMode) bool {
	if c == nil {
		return false
	}
	s, ok := c.state.(*intcodeState)
	if !ok {
		return false
	}
	if mode != IntcodeUnicode && mode != IntcodeBig5 {
		return false
	}
	s.mode = mode
	s.buffer = ""
	c.setPreedit("", 0)
	return true
}

func (c *Context) IntcodeGetMode() (IntcodeMode, bool) {
	if c == nil {
		return 0, false
	}
	s, ok := c.state.(*intcodeState)
	if !ok {
		return 0, false
	}
	return s.mode, true
}

func (c *Context) IntcodeBuffer() string {
	if c == nil {
		return ""
	}
	s, ok := c.state.(*intcodeState)
	if !ok {
		return ""
	}
	return s.buffer
}

// --- TSIN ---

func (c *Context) TsinPhrase() string {
	if c == nil {
		return ""
	}
	s, ok := c.state.(*tsinState)
	if !ok {
		return ""
	}
	return s.Phrase()
}

// TsinCommitPhrase implements spec.md §6 "tsin_commit_phrase" as a direct
// call, equivalent to routing an Enter key through ProcessKey.
func (c *Context) TsinCommitPhrase() KeyResult {
	if c == nil {
		return Ignored
	}
	s, ok := c.state.(*tsinState)
	if !ok {
		return Ignored
	}
	return s.onEnter(c)
}
