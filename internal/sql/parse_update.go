package sql

// parseUpdate parses:
//
//	UPDATE tableName SET col1 = value1, col2 = value2 [WHERE ...];
func (p *parser) parseUpdate() (Statement, error) {
	if err := p.keyword("update"); err != nil {
		return nil, err
	}
	p.skipSpace()
	tableName, err := p.tableName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if err := p.keyword("set"); err != nil {
		return nil, err
	}

	assignments, err := within(p, "Set Clause", func() ([]Assignment, error) {
		return commaList(p, p.assignment)
	})
	if err != nil {
		return nil, err
	}

	where, err := p.optionalWhere()
	if err != nil {
		return nil, err
	}

	return &UpdateStmt{
		TableName:   tableName,
		Assignments: assignments,
		Where:       where,
	}, nil
}

func (p *parser) assignment() (Assignment, error) {
	col, err := p.columnName()
	if err != nil {
		return Assignment{}, err
	}
	p.skipSpace()
	if err := p.expectChar('='); err != nil {
		return Assignment{}, err
	}
	p.skipSpace()
	val, err := within(p, "Value", p.value)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Column: col, Value: val}, nil
}
