package sql

// parseDelete parses:
//
//	DELETE FROM tableName [WHERE ...];
func (p *parser) parseDelete() (Statement, error) {
	if err := p.keywords("delete", "from"); err != nil {
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

	return &DeleteStmt{
		TableName: tableName,
		Where:     where,
	}, nil
}
