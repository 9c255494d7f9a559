package ast

type (
	// Expr is a node of a dice expression tree.
	//
	// Concrete types are Scalar, Roll, Add and Sub. Compound nodes own
	// their children exclusively; a tree built by the parser is a
	// left-associative chain with a leaf on every Right.
	Expr interface{}

	// Scalar is a flat integer term.
	Scalar struct {
		Value int
	}

	// Roll is Count dice with Sides sides each, summed.
	Roll struct {
		Count int
		Sides int
	}

	Add struct {
		Left  Expr
		Right Expr
	}

	Sub struct {
		Left  Expr
		Right Expr
	}
)
