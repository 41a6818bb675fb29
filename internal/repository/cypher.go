package repository

const listSourcesCypher = `
MATCH (n:Source)
RETURN n.device_name AS deviceName
ORDER BY deviceName`

const listDestinationsCypher = `
MATCH (source:Source {device_name: $sourceName})-[*]->(destination:Destination)
RETURN DISTINCT destination.device_name AS deviceName
ORDER BY deviceName`

// candidatePathsCypherTemplate scores each path by summing relationship costs
// and interior-node costs (endpoints excluded), delegating the actual shortest
// path ranking to the graph engine. The hop bound cannot be a query parameter,
// so it is formatted in.
const candidatePathsCypherTemplate = `
MATCH path = (start {device_name: $sourceName})-[rels:CONNECTS_TO*..%d]->(end {device_name: $destinationName})
WHERE ALL(node IN nodes(path) WHERE node.status = 'Active')
WITH path,
     REDUCE(s = 0, r IN rels | s + r.cost) AS relsCost,
     REDUCE(s = 0, node IN nodes(path)[1..-1] | s + node.cost) AS nodesCost
RETURN path, relsCost + nodesCost AS totalCost
ORDER BY totalCost ASC
LIMIT $limit`

const nodeCostCypher = `
MATCH (n {device_name: $nodeName})
RETURN n.cost AS cost`

const edgeCostCypher = `
MATCH (start {device_name: $startName})-[rel:CONNECTS_TO]->(end {device_name: $endName})
RETURN rel.cost AS cost`

const applyDefaultCostsCypher = `
MATCH (n)
SET n.cost = CASE
    WHEN n.device_type IN ['Source', 'Destination'] THEN 0
    ELSE 1
END`
