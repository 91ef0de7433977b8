package sql

// parseSelect parses:
//
//	SELECT * FROM users;
//	SELECT id, name FROM users WHERE id = 1;
func (p *parser) parseSelect() (Statement, error) {
	if err := p.keyword("select"); err != nil {
		return nil, err
	}

	columns, err := within(p, "Select Columns", func() ([]string, error) {
		return commaList(p, p.selectItem)
	})
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if err := p.keyword("from"); err != nil {
		return nil, err
	}
	p.skipSpace()
	tableName, err := p.tableName()
	if err != nil {
		return nil, err
	}

	where, err := p.optionalWhere()
	if err != nil {
		return nil, err
	}

	return &SelectStmt{
		TableName: tableName,
		Columns:   columns,
		Where:     where,
	}, nil
}

func (p *parser) selectItem() (string, error) {
	if p.tryChar('*') {
		return Wildcard, nil
	}
	return p.columnName()
}
