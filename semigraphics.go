package recyclerview

// Glyphs used for borders, labels and the scroll bar, written as escapes to
// keep the source ASCII.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal = "\u2500" // ─
	BoxDrawingsHeavyHorizontal = "\u2501" // ━
	BoxDrawingsLightVertical   = "\u2502" // │
	BoxDrawingsHeavyVertical   = "\u2503" // ┃

	BoxDrawingsLightDownAndRight = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft  = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft  = "\u2513" // ┓
	BoxDrawingsLightUpAndRight   = "\u2514" // └
	BoxDrawingsHeavyUpAndRight   = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft    = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft    = "\u251b" // ┛

	BoxDrawingsLightArcDownAndRight = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰

	TrianglePointingUp    = "\u25b2" // ▲
	TrianglePointingRight = "\u25b6" // ▶
	TrianglePointingDown  = "\u25bc" // ▼
	TrianglePointingLeft  = "\u25c0" // ◀
)
