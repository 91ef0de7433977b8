package sql

// optionalWhere parses "WHERE predicate" if present. It returns a nil
// Predicate and leaves the cursor alone when there is no WHERE.
func (p *parser) optionalWhere() (Predicate, error) {
	save := p.pos
	p.skipSpace()
	if !p.tryKeyword("where") {
		p.pos = save
		return nil, nil
	}
	p.skipSpace()
	return within(p, "Where Clause", p.predicate)
}

// predicate parses
//
//	constraint [ (AND | OR) predicate ]
//
// so chains lean right: a AND b OR c is a AND (b OR c).
func (p *parser) predicate() (Predicate, error) {
	left, err := within(p, "Where Constraint", p.constraint)
	if err != nil {
		return nil, err
	}

	save := p.pos
	p.skipSpace()
	var op BoolOp
	switch {
	case p.tryKeyword("and"):
		op = OpAnd
	case p.tryKeyword("or"):
		op = OpOr
	default:
		p.pos = save
		return left, nil
	}
	p.skipSpace()

	right, err := p.predicate()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: left, Op: op, Right: right}, nil
}

// constraint parses a leaf comparison, optionally preceded by NOT.
// NOT negates exactly one comparison; there is no grouping syntax.
func (p *parser) constraint() (Predicate, error) {
	if p.tryKeyword("not") {
		p.skipSpace()
		c, err := p.comparison()
		if err != nil {
			return nil, err
		}
		return &NotExpr{Inner: c}, nil
	}
	return p.comparison()
}

func (p *parser) comparison() (*Comparison, error) {
	col, err := p.columnName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	op, err := p.cmpOp()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	val, err := within(p, "Value", p.value)
	if err != nil {
		return nil, err
	}
	return &Comparison{Column: col, Op: op, Value: val}, nil
}
