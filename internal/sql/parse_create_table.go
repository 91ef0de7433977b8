package sql

// parseCreateTable parses:
//
//	CREATE TABLE name (col1 INT, col2 STRING, ...)
func (p *parser) parseCreateTable() (Statement, error) {
	if err := p.keywords("create", "table"); err != nil {
		return nil, err
	}
	p.skipSpace()
	tableName, err := p.tableName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()

	columns, err := within(p, "Column Definitions", p.columnDefinitions)
	if err != nil {
		return nil, err
	}

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   columns,
	}, nil
}

// columnDefinitions parses "(name type, ...)". Column names must be unique.
func (p *parser) columnDefinitions() ([]Column, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	cols, err := commaList(p, func() (Column, error) {
		start := p.pos
		col, err := within(p, "Column Definition", p.columnDefinition)
		if err != nil {
			return col, err
		}
		if seen[col.Name] {
			return col, p.errorf(start, len(col.Name), "duplicate column %q", col.Name)
		}
		seen[col.Name] = true
		return col, nil
	})
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.tryChar(')') {
		return nil, p.errorf(p.pos, p.tokenLen(), "expected ',' or ')' after column definition")
	}
	return cols, nil
}

func (p *parser) columnDefinition() (Column, error) {
	name, err := p.columnName()
	if err != nil {
		return Column{}, err
	}
	p.skipSpace()
	typ, err := within(p, "Column Type", p.dataType)
	if err != nil {
		return Column{}, err
	}
	return Column{Name: name, Type: typ}, nil
}
