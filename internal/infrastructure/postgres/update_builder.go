package postgres

import (
	"fmt"
	"strings"
)

// column nombre de columna. Solo constantes del paquete: un string de usuario no convierte implícitamente.
type column string

// updateBuilder acumula pares (columna, valor) y produce un UPDATE parametrizado.
// Los valores nunca se concatenan en el SQL.
type updateBuilder struct {
	table string
	cols  []column
	args  []any
}

func newUpdate(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// set agrega la columna al SET. Encadenable.
func (b *updateBuilder) set(col column, value any) *updateBuilder {
	b.cols = append(b.cols, col)
	b.args = append(b.args, value)
	return b
}

// empty indica si no hay columnas a actualizar.
func (b *updateBuilder) empty() bool { return len(b.cols) == 0 }

// build devuelve "UPDATE t SET c1 = $1, ... WHERE id = $n RETURNING ..." y sus argumentos.
func (b *updateBuilder) build(id int64, returning string) (string, []any) {
	sets := make([]string, len(b.cols))
	for i, c := range b.cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", b.table, strings.Join(sets, ", "), len(b.cols)+1)
	if returning != "" {
		sql += " RETURNING " + returning
	}
	args := make([]any, 0, len(b.args)+1)
	args = append(args, b.args...)
	args = append(args, id)
	return sql, args
}
