package updater

const tableDocument = `<html><body>
	<table>
		<thead><tr>
			<th>Week ending</th>
			<th>Total applications received</th>
			<th>Total number of people included</th>
			<th>Applications approved and visas issued</th>
			<th>People approved and issued visas</th>
			<th>Declined Failed Instructions</th>
		</tr></thead>
		<tbody>
			<tr><td>Total</td><td>3,000</td><td>5,500</td><td>300</td><td>700</td><td>3</td></tr>
			<tr><td>24 December 2021</td><td>1,000</td><td>2,500</td><td>100</td><td>300</td><td>1</td></tr>
			<tr><td>31 December 2021</td><td>2,000</td><td>3,000</td><td>200</td><td>400</td><td>2</td></tr>
		</tbody>
	</table>
</body></html>`

const snapshotDocument = `<html><body>
	<table>
		<tr>
			<th>Applications received</th>
			<th>People included in applications received</th>
			<th>Applications approved</th>
			<th>People included in applications approved</th>
			<th>Applications declined</th>
		</tr>
		<tr><td>190</td><td>400</td><td>40</td><td>79</td><td>3</td></tr>
	</table>
	<p>Data valid to approximately 10:30, 8 January 2022.</p>
</body></html>`

const historyDocument = `[
	{"time": "2022-01-01", "aply": 100, "aply_people": 250, "appr": 10, "appr_people": 20, "decl": 1},
	{"time": "2021-12-25", "aply": 50, "aply_people": 120, "appr": 5, "appr_people": 9, "decl": 0}
]`
