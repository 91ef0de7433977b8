package sql

// parseInsert parses an INSERT INTO ... VALUES (...) statement.
// Example supported syntax:
//
//	INSERT INTO users VALUES (1, 'Alice');
//	INSERT INTO users (name, id) VALUES ('Alice', 1);
//
// The optional column list says which table column each VALUES entry
// goes to. Matching it against the schema happens at execution time.
func (p *parser) parseInsert() (Statement, error) {
	if err := p.keywords("insert", "into"); err != nil {
		return nil, err
	}
	p.skipSpace()
	tableName, err := p.tableName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()

	var columns []string
	if !p.eof() && p.src[p.pos] == '(' {
		columns, err = within(p, "Column List", p.insertColumns)
		if err != nil {
			return nil, err
		}
		p.skipSpace()
	}

	if err := p.keyword("values"); err != nil {
		return nil, err
	}
	p.skipSpace()

	values, err := within(p, "Values", p.valueTuple)
	if err != nil {
		return nil, err
	}

	return &InsertStmt{
		TableName: tableName,
		Columns:   columns,
		Values:    values,
	}, nil
}

func (p *parser) insertColumns() ([]string, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	cols, err := commaList(p, func() (string, error) {
		start := p.pos
		name, err := p.columnName()
		if err != nil {
			return "", err
		}
		if seen[name] {
			return "", p.errorf(start, len(name), "duplicate column %q", name)
		}
		seen[name] = true
		return name, nil
	})
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.tryChar(')') {
		return nil, p.errorf(p.pos, p.tokenLen(), "expected ',' or ')' in column list")
	}
	return cols, nil
}

// valueTuple parses "(value, value, ...)".
func (p *parser) valueTuple() (Row, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	vals, err := commaList(p, func() (Value, error) {
		return within(p, "Value", p.value)
	})
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.tryChar(')') {
		return nil, p.errorf(p.pos, p.tokenLen(), "expected ',' or ')' in VALUES list")
	}
	return Row(vals), nil
}
