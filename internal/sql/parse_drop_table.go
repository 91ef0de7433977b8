package sql

// parseDropTable parses DROP TABLE name.
func (p *parser) parseDropTable() (Statement, error) {
	if err := p.keywords("drop", "table"); err != nil {
		return nil, err
	}
	p.skipSpace()
	tableName, err := p.tableName()
	if err != nil {
		return nil, err
	}
	return &DropTableStmt{TableName: tableName}, nil
}
