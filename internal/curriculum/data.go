package curriculum

// data.go - static course content (Portuguese), 5 modules / 13 lessons.

var modules = []Module{
	{
		ID:          "mod-1",
		Title:       "Fundamentos de SQL",
		Description: "Aprenda os conceitos básicos para consultar bancos de dados relacionais.",
		Level:       LevelIniciante,
		Icon:        "database",
		Order:       1,
		Lessons: []Lesson{
			{
				ID:          "l-1-1",
				ModuleID:    "mod-1",
				Title:       "SELECT e FROM",
				Description: "Selecione dados de uma tabela específica.",
				Content: `# Bem-vindo ao SQL

O comando **SELECT** é a base de quase todas as consultas em SQL. Ele permite que você escolha quais colunas de dados deseja ver.

O comando **FROM** especifica de qual tabela esses dados devem vir.

### Sintaxe Básica

` + "```sql\nSELECT coluna1, coluna2\nFROM nome_tabela;\n```" + `

Para selecionar todas as colunas, você pode usar o asterisco (*):

` + "```sql\nSELECT *\nFROM nome_tabela;\n```" + `
`,
				StarterQuery: "-- Selecione o nome e o preço de todos os produtos\nSELECT nome, preco\nFROM produtos;",
				Solution:     "SELECT nome, preco FROM produtos",
				Hint:         "Use SELECT nome, preco FROM produtos;",
				Order:        1,
				Quiz: Quiz{
					Question: "Qual comando escolhe as colunas que aparecem no resultado?",
					Options:  []string{"FROM", "SELECT", "WHERE", "GROUP BY"},
					Correct:  1,
					Explanation: "SELECT define a lista de colunas do resultado; FROM apenas " +
						"indica de qual tabela os dados vêm.",
				},
			},
			{
				ID:          "l-1-2",
				ModuleID:    "mod-1",
				Title:       "Filtrando com WHERE",
				Description: "Aprenda a filtrar resultados baseados em condições.",
				Content: `# Filtrando Dados

Muitas vezes você não quer ver todos os registros, apenas aqueles que atendem a certos critérios. É aí que entra o **WHERE**.

### Operadores Comuns

* ` + "`=`" + `: Igual a
* ` + "`>`" + `: Maior que
* ` + "`<`" + `: Menor que
* ` + "`>=`" + `: Maior ou igual a
* ` + "`!=`" + ` ou ` + "`<>`" + `: Diferente de

### Exemplo

` + "```sql\nSELECT *\nFROM clientes\nWHERE cidade = 'São Paulo';\n```" + `
`,
				StarterQuery: "-- Selecione todos os produtos com preço maior que 1000\nSELECT *\nFROM produtos\nWHERE ...",
				Solution:     "SELECT * FROM produtos WHERE preco > 1000",
				Hint:         "Use WHERE preco > 1000",
				Order:        2,
				Quiz: Quiz{
					Question: "Qual operador significa \"diferente de\" em SQL?",
					Options:  []string{"==", "<>", "><", "~="},
					Correct:  1,
					Explanation: "Tanto <> quanto != significam \"diferente de\"; == não existe " +
						"em SQL padrão.",
				},
			},
			{
				ID:          "l-1-3",
				ModuleID:    "mod-1",
				Title:       "Ordenando com ORDER BY",
				Description: "Organize seus resultados em ordem crescente ou decrescente.",
				Content: `# Ordenação de Resultados

O comando **ORDER BY** permite classificar o conjunto de resultados por uma ou mais colunas.

* **ASC**: Ordem crescente (padrão)
* **DESC**: Ordem decrescente

### Exemplo

` + "```sql\nSELECT nome, salario\nFROM funcionarios\nORDER BY salario DESC;\n```" + `
`,
				StarterQuery: "-- Liste os clientes ordenados pelo nome em ordem alfabética\nSELECT *\nFROM clientes\nORDER BY ...",
				Solution:     "SELECT * FROM clientes ORDER BY nome ASC",
				Hint:         "Use ORDER BY nome ASC (ou apenas ORDER BY nome, pois ASC é o padrão)",
				Order:        3,
				Quiz: Quiz{
					Question:    "Qual é a direção de ordenação padrão do ORDER BY?",
					Options:     []string{"DESC", "Aleatória", "ASC", "Depende da coluna"},
					Correct:     2,
					Explanation: "Quando nenhuma direção é informada, ORDER BY ordena em ordem crescente (ASC).",
				},
			},
			{
				ID:          "l-1-4",
				ModuleID:    "mod-1",
				Title:       "Limitando Resultados",
				Description: "Restrinja o número de linhas retornadas.",
				Content: `# Limitando Linhas

O comando **LIMIT** é usado para especificar o número máximo de registros a serem retornados. Isso é muito útil em tabelas grandes ou quando você quer apenas ver uma amostra dos dados.

### Exemplo

` + "```sql\nSELECT *\nFROM pedidos\nLIMIT 5;\n```" + `
`,
				StarterQuery: "-- Selecione os 3 produtos mais caros\nSELECT nome, preco\nFROM produtos\nORDER BY preco DESC\nLIMIT ...",
				Solution:     "SELECT nome, preco FROM produtos ORDER BY preco DESC LIMIT 3",
				Hint:         "Use LIMIT 3 no final da sua query.",
				Order:        4,
				Quiz: Quiz{
					Question: "O que acontece se LIMIT 5 for usado em uma tabela com 3 linhas?",
					Options: []string{
						"A consulta falha com erro",
						"As 3 linhas são retornadas",
						"Linhas vazias completam as 5",
						"Nenhuma linha é retornada",
					},
					Correct:     1,
					Explanation: "LIMIT é um teto, não uma exigência: retorna no máximo N linhas.",
				},
			},
			{
				ID:          "l-1-5",
				ModuleID:    "mod-1",
				Title:       "Valores Únicos com DISTINCT",
				Description: "Remova duplicatas dos seus resultados.",
				Content: `# Valores Distintos

O comando **DISTINCT** é usado para retornar apenas valores distintos (diferentes).

Em uma tabela, uma coluna pode conter muitos valores duplicados; e às vezes você quer apenas listar os valores diferentes (distintos).

### Exemplo

` + "```sql\nSELECT DISTINCT cidade\nFROM clientes;\n```" + `
`,
				StarterQuery: "-- Liste todas as categorias de produtos, sem repetições\nSELECT ... categoria\nFROM produtos;",
				Solution:     "SELECT DISTINCT categoria FROM produtos",
				Hint:         "Use SELECT DISTINCT categoria ...",
				Order:        5,
				Quiz: Quiz{
					Question: "Onde o DISTINCT deve aparecer na consulta?",
					Options: []string{
						"Logo após o SELECT",
						"Depois do FROM",
						"Dentro do WHERE",
						"No final da consulta",
					},
					Correct:     0,
					Explanation: "DISTINCT qualifica a lista de colunas do SELECT, então vem imediatamente depois dele.",
				},
			},
		},
	},
	{
		ID:          "mod-2",
		Title:       "Consultas Intermediárias",
		Description: "Combine tabelas e agrupe dados para análises mais profundas.",
		Level:       LevelIntermediario,
		Icon:        "layers",
		Order:       2,
		Lessons: []Lesson{
			{
				ID:          "l-2-1",
				ModuleID:    "mod-2",
				Title:       "INNER JOIN",
				Description: "Combine dados de duas tabelas baseados em uma coluna comum.",
				Content: `# Juntando Tabelas

O **INNER JOIN** seleciona registros que têm valores correspondentes em ambas as tabelas.

### Sintaxe

` + "```sql\nSELECT tabela1.coluna, tabela2.coluna\nFROM tabela1\nINNER JOIN tabela2 ON tabela1.id_comum = tabela2.id_comum;\n```" + `
`,
				StarterQuery: "-- Liste os pedidos e o nome do cliente que fez cada pedido\nSELECT pedidos.id, clientes.nome, pedidos.valor_total\nFROM pedidos\nINNER JOIN clientes ON ...",
				Solution:     "SELECT pedidos.id, clientes.nome, pedidos.valor_total FROM pedidos INNER JOIN clientes ON pedidos.cliente_id = clientes.id",
				Hint:         "A coluna comum é cliente_id na tabela pedidos e id na tabela clientes.",
				Order:        1,
				Quiz: Quiz{
					Question: "O que um INNER JOIN retorna?",
					Options: []string{
						"Todas as linhas das duas tabelas",
						"Apenas linhas com correspondência em ambas as tabelas",
						"Linhas da tabela da esquerda, com ou sem correspondência",
						"O produto cartesiano das tabelas",
					},
					Correct:     1,
					Explanation: "INNER JOIN descarta linhas sem correspondência na outra tabela.",
				},
			},
			{
				ID:          "l-2-2",
				ModuleID:    "mod-2",
				Title:       "Agregando com GROUP BY",
				Description: "Agrupe linhas que têm os mesmos valores em linhas de resumo.",
				Content: `# Agrupamento de Dados

O **GROUP BY** agrupa linhas que têm os mesmos valores em linhas de resumo, como "encontrar o número de clientes em cada cidade".

É frequentemente usado com funções de agregação:
* ` + "`COUNT()`" + `: Conta o número de linhas
* ` + "`SUM()`" + `: Soma os valores
* ` + "`AVG()`" + `: Calcula a média
* ` + "`MAX()`" + `: Encontra o valor máximo
* ` + "`MIN()`" + `: Encontra o valor mínimo

### Exemplo

` + "```sql\nSELECT cidade, COUNT(*)\nFROM clientes\nGROUP BY cidade;\n```" + `
`,
				StarterQuery: "-- Conte quantos produtos existem em cada categoria\nSELECT categoria, COUNT(*) as total_produtos\nFROM produtos\nGROUP BY ...",
				Solution:     "SELECT categoria, COUNT(*) as total_produtos FROM produtos GROUP BY categoria",
				Hint:         "Agrupe pela coluna categoria.",
				Order:        2,
				Quiz: Quiz{
					Question:    "Qual função de agregação calcula a média de uma coluna?",
					Options:     []string{"SUM()", "MEAN()", "AVG()", "MID()"},
					Correct:     2,
					Explanation: "AVG() é a função padrão de média em SQL; MEAN() não existe.",
				},
			},
			{
				ID:          "l-2-3",
				ModuleID:    "mod-2",
				Title:       "Filtrando Grupos com HAVING",
				Description: "Filtre resultados após o agrupamento.",
				Content: `# Filtrando Grupos

A cláusula **HAVING** foi adicionada ao SQL porque a palavra-chave **WHERE** não pode ser usada com funções de agregação.

### Exemplo

` + "```sql\nSELECT cidade, COUNT(*)\nFROM clientes\nGROUP BY cidade\nHAVING COUNT(*) > 5;\n```" + `
`,
				StarterQuery: "-- Mostre apenas as categorias que têm mais de 1 produto\nSELECT categoria, COUNT(*) as total\nFROM produtos\nGROUP BY categoria\nHAVING ...",
				Solution:     "SELECT categoria, COUNT(*) as total FROM produtos GROUP BY categoria HAVING COUNT(*) > 1",
				Hint:         "Use HAVING COUNT(*) > 1",
				Order:        3,
				Quiz: Quiz{
					Question: "Por que usar HAVING em vez de WHERE?",
					Options: []string{
						"HAVING é mais rápido",
						"WHERE não filtra sobre funções de agregação",
						"HAVING funciona sem GROUP BY",
						"São totalmente equivalentes",
					},
					Correct:     1,
					Explanation: "WHERE filtra linhas antes do agrupamento; HAVING filtra os grupos já agregados.",
				},
			},
		},
	},
	{
		ID:          "mod-3",
		Title:       "SQL Avançado",
		Description: "Domine subqueries, CTEs e funções de janela.",
		Level:       LevelAvancado,
		Icon:        "zap",
		Order:       3,
		Lessons: []Lesson{
			{
				ID:          "l-3-1",
				ModuleID:    "mod-3",
				Title:       "Subqueries",
				Description: "Use uma query dentro de outra query.",
				Content: `# Subconsultas

Uma subquery é uma consulta aninhada dentro de uma consulta maior.

### Exemplo

` + "```sql\nSELECT nome\nFROM produtos\nWHERE preco > (SELECT AVG(preco) FROM produtos);\n```" + `
`,
				StarterQuery: "-- Encontre os produtos que são mais caros que a média de todos os produtos\nSELECT nome, preco\nFROM produtos\nWHERE preco > (SELECT ... FROM produtos)",
				Solution:     "SELECT nome, preco FROM produtos WHERE preco > (SELECT AVG(preco) FROM produtos)",
				Hint:         "Use a função AVG(preco) na subquery.",
				Order:        1,
				Quiz: Quiz{
					Question: "Quando a subquery do exemplo é avaliada?",
					Options: []string{
						"Uma vez, antes da consulta externa comparar os preços",
						"Uma vez por linha da tabela externa, sempre",
						"Nunca; é apenas documentação",
						"Somente se a consulta externa não retornar linhas",
					},
					Correct:     0,
					Explanation: "Uma subquery sem referência à consulta externa (não correlacionada) é avaliada uma única vez.",
				},
			},
			{
				ID:          "l-3-2",
				ModuleID:    "mod-3",
				Title:       "CTEs (Common Table Expressions)",
				Description: "Crie tabelas temporárias nomeadas para organizar suas queries.",
				Content: `# CTEs (Common Table Expressions)

Uma CTE é uma "tabela temporária" que existe apenas durante a execução de uma única instrução SQL. Ela torna queries complexas mais legíveis.

### Sintaxe

` + "```sql\nWITH NomeDaCTE AS (\n    SELECT coluna1, coluna2\n    FROM tabela\n    WHERE condicao\n)\nSELECT *\nFROM NomeDaCTE;\n```" + `

### Exemplo

` + "```sql\nWITH VendasAltas AS (\n    SELECT *\n    FROM pedidos\n    WHERE valor_total > 1000\n)\nSELECT COUNT(*) FROM VendasAltas;\n```" + `
`,
				StarterQuery: "-- Use uma CTE para encontrar a média de salários por departamento, e depois selecione apenas os departamentos com média maior que 4000\nWITH MediaSalarios AS (\n    SELECT departamento, AVG(salario) as media\n    FROM funcionarios\n    GROUP BY departamento\n)\nSELECT *\nFROM MediaSalarios\nWHERE ...",
				Solution:     "WITH MediaSalarios AS (SELECT departamento, AVG(salario) as media FROM funcionarios GROUP BY departamento) SELECT * FROM MediaSalarios WHERE media > 4000",
				Hint:         "Filtre onde a media > 4000.",
				Order:        2,
				Quiz: Quiz{
					Question:    "Qual é o tempo de vida de uma CTE?",
					Options:     []string{"A sessão inteira", "Uma única instrução SQL", "Até ser removida com DROP", "O tempo da transação"},
					Correct:     1,
					Explanation: "A CTE existe apenas durante a instrução em que foi declarada.",
				},
			},
		},
	},
	{
		ID:          "mod-4",
		Title:       "Casos de Negócio",
		Description: "Aplique seus conhecimentos em cenários do mundo real.",
		Level:       LevelExpert,
		Icon:        "briefcase",
		Order:       4,
		Lessons: []Lesson{
			{
				ID:          "l-4-1",
				ModuleID:    "mod-4",
				Title:       "Análise de Vendas",
				Description: "Calcule o total de vendas por departamento.",
				Content: `# Relatório de Vendas

A diretoria precisa saber qual foi o faturamento total de cada categoria de produtos.

Você precisará juntar as tabelas ` + "`itens_pedido`" + `, ` + "`produtos`" + ` e agrupar por categoria.
`,
				StarterQuery: "-- Calcule o valor total vendido por categoria de produto\nSELECT p.categoria, SUM(ip.quantidade * ip.preco_unitario) as faturamento_total\nFROM itens_pedido ip\nJOIN produtos p ON ip.produto_id = p.id\nGROUP BY ...\nORDER BY faturamento_total DESC",
				Solution:     "SELECT p.categoria, SUM(ip.quantidade * ip.preco_unitario) as faturamento_total FROM itens_pedido ip JOIN produtos p ON ip.produto_id = p.id GROUP BY p.categoria ORDER BY faturamento_total DESC",
				Hint:         "Agrupe por p.categoria.",
				Order:        1,
				Quiz: Quiz{
					Question: "Por que multiplicar quantidade por preco_unitario antes do SUM?",
					Options: []string{
						"Para contar os itens de cada pedido",
						"Para obter o valor vendido linha a linha antes de somar",
						"Porque SUM exige dois argumentos",
						"Para eliminar duplicatas",
					},
					Correct:     1,
					Explanation: "Cada linha de itens_pedido representa quantidade × preço; a soma desses produtos é o faturamento.",
				},
			},
		},
	},
	{
		ID:          "mod-5",
		Title:       "Window Functions",
		Description: "Aprenda a realizar cálculos através de um conjunto de linhas.",
		Level:       LevelExpert,
		Icon:        "bar_chart",
		Order:       5,
		Lessons: []Lesson{
			{
				ID:          "l-5-1",
				ModuleID:    "mod-5",
				Title:       "ROW_NUMBER()",
				Description: "Atribua um número sequencial para cada linha.",
				Content: `# Funções de Janela: ROW_NUMBER()

Funções de janela permitem fazer cálculos em um conjunto de linhas relacionadas à linha atual.

**ROW_NUMBER()** atribui um número inteiro sequencial a cada linha dentro de uma partição de um conjunto de resultados.

### Sintaxe

` + "```sql\nSELECT coluna,\n       ROW_NUMBER() OVER (ORDER BY coluna) as numero_linha\nFROM tabela;\n```" + `

Você também pode particionar (reiniciar a contagem) por grupos:

` + "```sql\nSELECT departamento, nome, salario,\n       ROW_NUMBER() OVER (PARTITION BY departamento ORDER BY salario DESC) as rank\nFROM funcionarios;\n```" + `
`,
				StarterQuery: "-- Classifique os produtos por preço (do mais caro para o mais barato) usando ROW_NUMBER()\nSELECT nome, preco,\n       ROW_NUMBER() OVER (ORDER BY ...) as ranking\nFROM produtos;",
				Solution:     "SELECT nome, preco, ROW_NUMBER() OVER (ORDER BY preco DESC) as ranking FROM produtos",
				Hint:         "Use ORDER BY preco DESC dentro da cláusula OVER.",
				Order:        1,
				Quiz: Quiz{
					Question: "O que diferencia uma função de janela de uma agregação com GROUP BY?",
					Options: []string{
						"Funções de janela não aceitam ORDER BY",
						"Funções de janela preservam as linhas individuais",
						"GROUP BY é sempre mais lento",
						"Não há diferença",
					},
					Correct:     1,
					Explanation: "A janela calcula sobre um conjunto de linhas mas mantém cada linha no resultado; GROUP BY colapsa em linhas de resumo.",
				},
			},
			{
				ID:          "l-5-2",
				ModuleID:    "mod-5",
				Title:       "RANK() vs DENSE_RANK()",
				Description: "Entenda a diferença entre ranking com e sem \"buracos\".",
				Content: `# RANK() e DENSE_RANK()

Ambas as funções atribuem um rank para cada linha, mas tratam empates de forma diferente.

* **RANK()**: Se houver empate, o próximo número no ranking será pulado. (Ex: 1, 2, 2, 4)
* **DENSE_RANK()**: Se houver empate, o próximo número no ranking NÃO será pulado. (Ex: 1, 2, 2, 3)

### Exemplo

` + "```sql\nSELECT nome, salario,\n       RANK() OVER (ORDER BY salario DESC) as rank_normal,\n       DENSE_RANK() OVER (ORDER BY salario DESC) as rank_denso\nFROM funcionarios;\n```" + `
`,
				StarterQuery: "-- Use DENSE_RANK para classificar os funcionários por salário, sem pular números no ranking\nSELECT nome, salario,\n       ... OVER (ORDER BY salario DESC) as ranking\nFROM funcionarios;",
				Solution:     "SELECT nome, salario, DENSE_RANK() OVER (ORDER BY salario DESC) as ranking FROM funcionarios",
				Hint:         "Use DENSE_RANK() OVER ...",
				Order:        2,
				Quiz: Quiz{
					Question: "Com salários 500, 400, 400 e 300, quais ranks DENSE_RANK() atribui?",
					Options:  []string{"1, 2, 2, 4", "1, 2, 2, 3", "1, 2, 3, 4", "1, 1, 2, 3"},
					Correct:  1,
					Explanation: "DENSE_RANK não pula posições após empates; RANK produziria " +
						"1, 2, 2, 4.",
				},
			},
		},
	},
}
